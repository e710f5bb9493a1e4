package tui

import "github.com/certdesk/certdesk/internal/toast"

// maxVisibleToasts caps how many queued notifications render at once; older
// ones stay queued and surface as earlier entries expire.
const maxVisibleToasts = 3

func renderToasts(toasts []toast.Toast, pausedID int) string {
	if len(toasts) == 0 {
		return ""
	}

	visible := toasts
	if len(visible) > maxVisibleToasts {
		visible = visible[:maxVisibleToasts]
	}

	out := "\n"
	for _, item := range visible {
		var style = infoStyle
		switch item.Kind {
		case toast.KindSuccess:
			style = successStyle
		case toast.KindError:
			style = errorStyle
		}

		line := style.Render(item.Title)
		if item.Message != "" {
			line += "  " + item.Message
		}
		if item.ID == pausedID {
			line += helpStyle.Render("  (paused)")
		}
		out += toastStyle.Render(line) + "\n"
	}

	out += helpStyle.Render("x dismiss  p pause")
	return out
}
