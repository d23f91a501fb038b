package constants

const (
	// Context Keys
	ContextKeySettings = "settings"

	// Session Keys
	SessionKeySearch = "search"

	// Setting Keys
	SettingSiteTitle         = "site_title"
	SettingArticleIndexEntry = "article_index_entry"
	SettingPagelistLength    = "pagelist_length"
)

// DefaultSettings are written on first start.
var DefaultSettings = map[string]string{
	SettingSiteTitle:         "itemnav",
	SettingArticleIndexEntry: "false",
	SettingPagelistLength:    "7",
}
