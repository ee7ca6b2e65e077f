package format

// TextShadowCSS maps a shadow intensity to its CSS text-shadow value.
func TextShadowCSS(shadow string) string {
	switch shadow {
	case "light":
		return "0 1px 2px rgba(0,0,0,0.5)"
	case "medium":
		return "0 2px 4px rgba(0,0,0,0.6), 0 4px 8px rgba(0,0,0,0.4)"
	case "heavy":
		return "0 0 0 4px rgba(0,0,0,0.8), 0 4px 12px rgba(0,0,0,0.8), 0 8px 24px rgba(0,0,0,0.6)"
	default:
		return "none"
	}
}

// AnimationCSS maps an entrance animation to its utility class.
func AnimationCSS(animation string) string {
	switch animation {
	case "pop":
		return "animate-pop-in"
	case "slide-up":
		return "animate-slide-up"
	case "fade":
		return "animate-fade-in"
	case "bounce":
		return "animate-bounce-in"
	default:
		return ""
	}
}
