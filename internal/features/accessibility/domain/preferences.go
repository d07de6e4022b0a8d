package domain

// Font size bounds for the preference store. Values outside the range are
// clamped on merge rather than rejected, matching the slider control.
const (
	MinFontSize = 12
	MaxFontSize = 24
)

// Preferences represents the accessibility and display options for a user.
// The JSON field names are the persisted snapshot format.
type Preferences struct {
	// FontSize is the base font size in pixels, within [MinFontSize, MaxFontSize].
	FontSize int `json:"fontSize"`
	// HighContrast enables a high-contrast color scheme.
	HighContrast bool `json:"highContrast"`
	// ReduceMotion disables non-essential animations.
	ReduceMotion bool `json:"reduceMotion"`
	// ScreenReader enables screen-reader optimized output.
	ScreenReader bool `json:"screenReader"`
	// KeyboardNavigation enables full keyboard navigation support.
	KeyboardNavigation bool `json:"keyboardNavigation"`
	// VoiceAnnouncements enables spoken status announcements.
	VoiceAnnouncements bool `json:"voiceAnnouncements"`
}

// Patch is a partial preference update. Nil fields are left unchanged.
type Patch struct {
	FontSize           *int  `json:"fontSize,omitempty"`
	HighContrast       *bool `json:"highContrast,omitempty"`
	ReduceMotion       *bool `json:"reduceMotion,omitempty"`
	ScreenReader       *bool `json:"screenReader,omitempty"`
	KeyboardNavigation *bool `json:"keyboardNavigation,omitempty"`
	VoiceAnnouncements *bool `json:"voiceAnnouncements,omitempty"`
}

// Defaults returns the preference values used before a user saves anything.
func Defaults() Preferences {
	return Preferences{
		FontSize:           16,
		HighContrast:       false,
		ReduceMotion:       false,
		ScreenReader:       false,
		KeyboardNavigation: true,
		VoiceAnnouncements: false,
	}
}

// Merge applies a partial update and returns the resulting preferences.
// Font size is clamped to the allowed range.
func (p Preferences) Merge(patch Patch) Preferences {
	if patch.FontSize != nil {
		p.FontSize = clampFontSize(*patch.FontSize)
	}
	if patch.HighContrast != nil {
		p.HighContrast = *patch.HighContrast
	}
	if patch.ReduceMotion != nil {
		p.ReduceMotion = *patch.ReduceMotion
	}
	if patch.ScreenReader != nil {
		p.ScreenReader = *patch.ScreenReader
	}
	if patch.KeyboardNavigation != nil {
		p.KeyboardNavigation = *patch.KeyboardNavigation
	}
	if patch.VoiceAnnouncements != nil {
		p.VoiceAnnouncements = *patch.VoiceAnnouncements
	}
	return p
}

func clampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
