// Package catalog holds the storefront content entities managed through
// the admin dashboard: operating systems, icon bundles, categories, tags,
// hero slides and the settings singleton.
package catalog

// FolderIcon is a single icon inside an OS version.
type FolderIcon struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	OffsetX  float64 `json:"offsetX,omitempty"`
	OffsetY  float64 `json:"offsetY,omitempty"`
}

// OSVersion groups the folder icons belonging to one release of an OS.
type OSVersion struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	FolderIcons []FolderIcon `json:"folderIcons"`
}

// OperatingSystem describes a supported OS. Format drives icon export
// encoding and defaults to png when empty.
type OperatingSystem struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Image     string      `json:"image,omitempty"`
	BrandIcon string      `json:"brandIcon,omitempty"`
	Format    string      `json:"format,omitempty"` // png, ico or icns
	Versions  []OSVersion `json:"versions"`
}

// BundleIcon is one entry of a bundle's ordered icon list.
type BundleIcon struct {
	Name string `json:"name"`
	Type string `json:"type"` // lucide, fontawesome or heroicons
}

// Bundle is a curated, ordered set of icons sold in the storefront.
// Icons are denormalized copies, not references into another collection.
type Bundle struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Tags         []string     `json:"tags"`
	PreviewImage string       `json:"previewImage,omitempty"`
	TargetOS     []string     `json:"targetOS"`
	Icons        []BundleIcon `json:"icons"`
}

// Category groups bundles in the storefront navigation.
type Category struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Color          string   `json:"color,omitempty"`
	SeoTitle       string   `json:"seoTitle,omitempty"`
	SeoDescription string   `json:"seoDescription,omitempty"`
	SeoKeywords    []string `json:"seoKeywords,omitempty"`
}

// Tag labels bundles; its slug is unique per collection.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// HeroSlide is one slide of the landing-page carousel, ordered by Order.
type HeroSlide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl"`
	Link        string `json:"link,omitempty"`
	Order       int    `json:"order"`
}

// AdConfig controls ad placement on public pages.
type AdConfig struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	ClientID  string `json:"clientId,omitempty"`
	SlotID    string `json:"slotId,omitempty"`
	Placement string `json:"placement,omitempty"`
}

// Settings is the singleton configuration document.
type Settings struct {
	AdConfig AdConfig        `json:"adConfig"`
	Features map[string]bool `json:"features,omitempty"`
}
