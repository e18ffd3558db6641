package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// appCSS uses theme-aware colors so it works in dark and light mode.
const appCSS = `
/* Connection status */
.status-connected {
    color: #2ec27e;
    font-weight: 600;
}

.status-disconnected {
    opacity: 0.6;
}

.status-connecting {
    color: #e5a50a;
    font-weight: 500;
}

.status-error {
    color: #e01b24;
    font-weight: 500;
}

/* Connect button */
.connect-button {
    background-color: #3584e4;
    color: white;
}

.connect-button:hover {
    background-color: #1c71d8;
}

/* nordvpn option values */
.setting-value {
    font-weight: 500;
}

.setting-enabled {
    color: @theme_selected_bg_color;
}

.setting-disabled {
    font-weight: 200;
    opacity: 0.7;
}

/* Status Bar */
.status-bar {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding: 6px 12px;
    opacity: 0.8;
}

/* Entry fields */
entry {
    border-radius: 6px;
    min-height: 34px;
}

/* Lists inherit the theme background */
list {
    background-color: transparent;
}

list > row:selected {
    background-color: alpha(#3584e4, 0.2);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
