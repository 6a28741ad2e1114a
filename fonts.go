package rec2pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// recognizedFonts are the cyrillic-capable font files the renderer knows how
// to embed, in preference order.
var recognizedFonts = []string{
	"DejaVuSans.ttf",
	"Roboto-Regular.ttf",
}

// FindFont returns the path of the first recognized font file found in the
// given directories. Directories are searched in order; pass the operator's
// fonts/ directory first so it wins over system fonts. Fails with
// ErrNoFontFound when no candidate exists.
func FindFont(dirs ...string) (string, error) {
	searched := append([]string{}, dirs...)
	searched = append(searched, systemFontDirs()...)

	for _, dir := range searched {
		if dir == "" {
			continue
		}
		for _, name := range recognizedFonts {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: searched %s", ErrNoFontFound, strings.Join(searched, ", "))
}

// systemFontDirs lists well-known font locations for the current OS.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return []string{
			filepath.Join(home, "Library", "Fonts"),
			"/Library/Fonts",
			"/System/Library/Fonts/Supplemental",
		}
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	default:
		home, _ := os.UserHomeDir()
		return []string{
			filepath.Join(home, ".local", "share", "fonts"),
			"/usr/share/fonts/truetype/dejavu",
			"/usr/share/fonts/truetype/roboto/unhinted",
			"/usr/local/share/fonts",
		}
	}
}

// fontFamilyName maps a recognized font file to the family name used in the
// stylesheet. Unknown files reuse their base name without extension.
func fontFamilyName(fontPath string) string {
	base := filepath.Base(fontPath)
	switch base {
	case "DejaVuSans.ttf":
		return "DejaVu Sans"
	case "Roboto-Regular.ttf":
		return "Roboto"
	default:
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
}

// buildFontFaceCSS emits an @font-face rule embedding the font by file URL,
// plus a body override so the embedded family is preferred. Chrome resolves
// the file:// src because the substituted HTML is itself loaded from a file.
func buildFontFaceCSS(fontPath string) string {
	if fontPath == "" {
		return ""
	}
	abs, err := filepath.Abs(fontPath)
	if err != nil {
		abs = fontPath
	}
	family := fontFamilyName(abs)
	return fmt.Sprintf(`@font-face {
  font-family: %q;
  src: url("file://%s");
}
body { font-family: %q, "DejaVu Sans", "Roboto", "Liberation Sans", Arial, sans-serif; }
`, family, filepath.ToSlash(abs), family)
}
