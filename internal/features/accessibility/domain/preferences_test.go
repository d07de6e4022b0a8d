package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, 16, d.FontSize)
	assert.False(t, d.HighContrast)
	assert.False(t, d.ReduceMotion)
	assert.False(t, d.ScreenReader)
	assert.True(t, d.KeyboardNavigation)
	assert.False(t, d.VoiceAnnouncements)
}

func TestPreferences_Merge(t *testing.T) {
	tests := []struct {
		name     string
		base     Preferences
		patch    Patch
		expected Preferences
	}{
		{
			name:     "EmptyPatchKeepsEverything",
			base:     Defaults(),
			patch:    Patch{},
			expected: Defaults(),
		},
		{
			name: "SingleFieldMerge",
			base: Defaults(),
			patch: Patch{
				HighContrast: boolPtr(true),
			},
			expected: Preferences{
				FontSize:           16,
				HighContrast:       true,
				KeyboardNavigation: true,
			},
		},
		{
			name: "MultipleFieldsMerge",
			base: Defaults(),
			patch: Patch{
				FontSize:           intPtr(20),
				ReduceMotion:       boolPtr(true),
				VoiceAnnouncements: boolPtr(true),
			},
			expected: Preferences{
				FontSize:           20,
				ReduceMotion:       true,
				KeyboardNavigation: true,
				VoiceAnnouncements: true,
			},
		},
		{
			name: "DisableDefaultTrueField",
			base: Defaults(),
			patch: Patch{
				KeyboardNavigation: boolPtr(false),
			},
			expected: Preferences{
				FontSize: 16,
			},
		},
		{
			name: "FontSizeClampedHigh",
			base: Defaults(),
			patch: Patch{
				FontSize: intPtr(30),
			},
			expected: Preferences{
				FontSize:           24,
				KeyboardNavigation: true,
			},
		},
		{
			name: "FontSizeClampedLow",
			base: Defaults(),
			patch: Patch{
				FontSize: intPtr(8),
			},
			expected: Preferences{
				FontSize:           12,
				KeyboardNavigation: true,
			},
		},
		{
			name: "FontSizeBoundaryValuesPassThrough",
			base: Defaults(),
			patch: Patch{
				FontSize: intPtr(24),
			},
			expected: Preferences{
				FontSize:           24,
				KeyboardNavigation: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Merge(tt.patch)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestPreferences_MergeDoesNotMutateReceiver verifies value semantics of Merge.
func TestPreferences_MergeDoesNotMutateReceiver(t *testing.T) {
	base := Defaults()
	base.Merge(Patch{FontSize: intPtr(20), HighContrast: boolPtr(true)})

	assert.Equal(t, Defaults(), base)
}
