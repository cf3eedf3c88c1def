package contentful

import (
	"encoding/json"
	"fmt"
	"time"
)

// Sys is the system metadata block attached to every Contentful object.
type Sys struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	LinkType    string     `json:"linkType,omitempty"`
	ContentType *Link      `json:"contentType,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Revision    int        `json:"revision,omitempty"`
	Version     int        `json:"version,omitempty"`
	Locale      string     `json:"locale,omitempty"`
}

// Link references another entry or asset by ID.
type Link struct {
	Sys Sys `json:"sys"`
}

// ID returns the linked object's ID.
func (l Link) ID() string { return l.Sys.ID }

// Entry is a content record. Fields are kept raw and decoded by the caller
// into its own shape.
type Entry struct {
	Sys    Sys             `json:"sys"`
	Fields json.RawMessage `json:"fields"`
}

// ContentTypeID returns the ID of the entry's content type.
func (e Entry) ContentTypeID() string {
	if e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// DecodeFields unmarshals the entry's fields into v.
func (e Entry) DecodeFields(v any) error {
	if len(e.Fields) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Fields, v); err != nil {
		return fmt.Errorf("decode fields of entry %s: %w", e.Sys.ID, err)
	}
	return nil
}

// Asset is a binary file held by the content store.
type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

// AssetFields carries the asset's title, description and file.
type AssetFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	File        *File  `json:"file"`
}

// File describes the stored file of an asset.
type File struct {
	URL         string      `json:"url"`
	FileName    string      `json:"fileName"`
	ContentType string      `json:"contentType"`
	Details     FileDetails `json:"details"`
}

// FileDetails holds size and, for images, pixel dimensions.
type FileDetails struct {
	Size  int64      `json:"size"`
	Image *ImageSize `json:"image,omitempty"`
}

// ImageSize is the pixel size of an image asset.
type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// URL returns the asset's file URL, or "" if the asset has no file.
func (a *Asset) URL() string {
	if a == nil || a.Fields.File == nil {
		return ""
	}
	return a.Fields.File.URL
}

// Includes holds linked objects resolved alongside a collection.
type Includes struct {
	Asset []Asset `json:"Asset"`
	Entry []Entry `json:"Entry"`
}

// ResponseError reports a link the API could not resolve.
type ResponseError struct {
	Sys     Sys            `json:"sys"`
	Details map[string]any `json:"details"`
}

// EntryCollection is one page of entries.
type EntryCollection struct {
	Total    int             `json:"total"`
	Skip     int             `json:"skip"`
	Limit    int             `json:"limit"`
	Items    []Entry         `json:"items"`
	Includes Includes        `json:"includes"`
	Errors   []ResponseError `json:"errors,omitempty"`
}

// Asset looks up an included asset by ID.
func (c *EntryCollection) Asset(id string) (*Asset, bool) {
	if c == nil || id == "" {
		return nil, false
	}
	for i := range c.Includes.Asset {
		if c.Includes.Asset[i].Sys.ID == id {
			return &c.Includes.Asset[i], true
		}
	}
	return nil, false
}

// Space is the metadata of a space.
type Space struct {
	Sys  Sys    `json:"sys"`
	Name string `json:"name"`
}

// ContentType describes the shape of one kind of entry. It doubles as the
// provisioning definition, hence the YAML tags.
type ContentType struct {
	Sys          Sys     `json:"sys,omitempty" yaml:"-"`
	ID           string  `json:"-" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	DisplayField string  `json:"displayField,omitempty" yaml:"displayField"`
	Description  string  `json:"description,omitempty" yaml:"description"`
	Fields       []Field `json:"fields" yaml:"fields"`
}

// Field is one field of a content type.
type Field struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        string       `json:"type" yaml:"type"`
	LinkType    string       `json:"linkType,omitempty" yaml:"linkType"`
	Required    bool         `json:"required" yaml:"required"`
	Localized   bool         `json:"localized" yaml:"localized"`
	Disabled    bool         `json:"disabled,omitempty" yaml:"disabled"`
	Omitted     bool         `json:"omitted,omitempty" yaml:"omitted"`
	Items       *FieldItems  `json:"items,omitempty" yaml:"items"`
	Validations []Validation `json:"validations,omitempty" yaml:"validations"`
}

// FieldItems describes the element type of an Array field.
type FieldItems struct {
	Type        string       `json:"type" yaml:"type"`
	LinkType    string       `json:"linkType,omitempty" yaml:"linkType"`
	Validations []Validation `json:"validations,omitempty" yaml:"validations"`
}

// Validation is a single field constraint. Only the members in use are set.
type Validation struct {
	Unique            bool     `json:"unique,omitempty" yaml:"unique"`
	In                []string `json:"in,omitempty" yaml:"in"`
	Range             *Range   `json:"range,omitempty" yaml:"range"`
	LinkContentType   []string `json:"linkContentType,omitempty" yaml:"linkContentType"`
	LinkMimetypeGroup []string `json:"linkMimetypeGroup,omitempty" yaml:"linkMimetypeGroup"`
	Message           string   `json:"message,omitempty" yaml:"message"`
}

// Range bounds a numeric field.
type Range struct {
	Min *float64 `json:"min,omitempty" yaml:"min"`
	Max *float64 `json:"max,omitempty" yaml:"max"`
}

// ContentTypeCollection lists the content types of an environment.
type ContentTypeCollection struct {
	Total int           `json:"total"`
	Items []ContentType `json:"items"`
}
