package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme. Anything unrecognised is treated as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool {
	return t == ThemeDark
}

type ThemeResponse struct {
	Theme  Theme `json:"theme"`
	IsDark bool  `json:"is_dark"`
}

type SetAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"required,max=256"`
}

type APIKeyStatus struct {
	Configured bool   `json:"configured"`
	Masked     string `json:"masked,omitempty"`
}

type SettingsResponse struct {
	User   *User         `json:"user"`
	Theme  ThemeResponse `json:"theme"`
	APIKey APIKeyStatus  `json:"api_key"`
}
