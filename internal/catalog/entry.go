package catalog

// Entry is one curated item in canonical form. Every field is concrete;
// optional fields that were absent in the document hold their zero value.
type Entry struct {
	// ID is a positive identifier, or 0 when the document did not set one.
	// Uniqueness is not checked.
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Date    Date   `json:"date"`
	Content string `json:"content"`
	Meta    string `json:"meta"`
	At      string `json:"at"`
	Senpan  string `json:"senpan"`
}

// HasID reports whether the entry carries an identifier.
func (e *Entry) HasID() bool {
	return e.ID > 0
}

// Config is a whole decoded document.
type Config struct {
	MarkdownHeader string  `json:"markdown_header"`
	Entries        []Entry `json:"entries"`
}

// WithHeader returns a copy of the config with its markdown header replaced.
// The receiver is left untouched.
func (c *Config) WithHeader(header string) *Config {
	entries := make([]Entry, len(c.Entries))
	copy(entries, c.Entries)
	return &Config{
		MarkdownHeader: header,
		Entries:        entries,
	}
}

// AllHaveIDs reports whether the config has entries and every one of them
// carries an id.
func (c *Config) AllHaveIDs() bool {
	if len(c.Entries) == 0 {
		return false
	}
	for i := range c.Entries {
		if !c.Entries[i].HasID() {
			return false
		}
	}
	return true
}

// RawEntry is an entry as parsed, before defaults are applied.
// A nil field was absent from the document.
type RawEntry struct {
	ID      *int64   `toml:"id"      yaml:"id"`
	Title   *string  `toml:"title"   yaml:"title"`
	Date    *RawDate `toml:"date"    yaml:"date"`
	Content *string  `toml:"content" yaml:"content"`
	Meta    *string  `toml:"meta"    yaml:"meta"`
	At      *string  `toml:"at"      yaml:"at"`
	Senpan  *string  `toml:"senpan"  yaml:"senpan"`
}

// RawConfig is a document as parsed, before defaults are applied.
type RawConfig struct {
	MarkdownHeader *string    `toml:"markdown_header" yaml:"markdown_header"`
	Entries        []RawEntry `toml:"entries"         yaml:"entries"`

	// Yasunori is the legacy table name for Entries.
	Yasunori []RawEntry `toml:"yasunori" yaml:"yasunori"`
}
