package models

// Theme is the persisted UI color preference. An absent value means the
// shopper never chose and the OS preference should be followed.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the two known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
