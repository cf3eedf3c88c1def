package cloudinary

import (
	"strconv"
	"strings"
)

// DefaultAvatarSize is the edge length used by AvatarImage when none is given.
const DefaultAvatarSize = 200

// DefaultSizes is the sizes attribute paired with ResponsiveSet: full width on
// phones, half on tablets, a third on desktops.
const DefaultSizes = "(max-width: 640px) 100vw, (max-width: 1024px) 50vw, 33vw"

// DefaultWidths are the candidate widths used when ResponsiveSet gets none.
var DefaultWidths = []int{400, 800, 1200}

// Preset option sets.
var (
	ProjectCard = Options{
		Width:       800,
		Height:      600,
		AspectRatio: "4:3",
		Crop:        CropFill,
		Gravity:     GravityAuto,
		Quality:     QualityGood,
	}
	Hero = Options{
		Width:       1920,
		Height:      1080,
		AspectRatio: "16:9",
		Crop:        CropFill,
		Gravity:     GravityFaces,
		Quality:     QualityBest,
	}
	Placeholder = Options{
		Width:   20,
		Quality: QualityLevel(10),
		Blur:    1000,
		Format:  FormatWebP,
	}
)

// Avatar returns the square face-cropped option set for the given edge length.
func Avatar(size int) Options {
	if size <= 0 {
		size = DefaultAvatarSize
	}
	return Options{
		Width:       size,
		Height:      size,
		AspectRatio: "1:1",
		Crop:        CropThumb,
		Gravity:     GravityFace,
		Quality:     QualityGood,
	}
}

// ProjectImage returns a 4:3 project card image.
func (b *Builder) ProjectImage(source string) string {
	return b.URL(source, ProjectCard)
}

// HeroImage returns a full-width 16:9 header image.
func (b *Builder) HeroImage(source string) string {
	return b.URL(source, Hero)
}

// AvatarImage returns a square profile image; size <= 0 means DefaultAvatarSize.
func (b *Builder) AvatarImage(source string, size int) string {
	return b.URL(source, Avatar(size))
}

// PlaceholderImage returns a tiny, heavily blurred image for lazy loading.
func (b *Builder) PlaceholderImage(source string) string {
	return b.URL(source, Placeholder)
}

// ImageSet holds the src, srcset and sizes attributes of a responsive <img>.
type ImageSet struct {
	Src    string `json:"src"`
	SrcSet string `json:"srcset"`
	Sizes  string `json:"sizes"`
}

// ResponsiveSet builds srcset candidates for every width in widths, falling
// back to DefaultWidths when widths is empty. Src uses the middle width.
// Options in opts take precedence over the candidate width. widths is not
// modified.
func (b *Builder) ResponsiveSet(source string, widths []int, opts Options) ImageSet {
	if source == "" {
		return ImageSet{}
	}
	if len(widths) == 0 {
		widths = DefaultWidths
	}
	candidates := make([]string, 0, len(widths))
	for _, w := range widths {
		u := b.URL(source, Options{Width: w}.Merge(opts))
		candidates = append(candidates, u+" "+strconv.Itoa(w)+"w")
	}
	return ImageSet{
		Src:    b.URL(source, Options{Width: widths[len(widths)/2]}.Merge(opts)),
		SrcSet: strings.Join(candidates, ", "),
		Sizes:  DefaultSizes,
	}
}

// ScaledWidths returns base, 1.5x base and 2x base.
func ScaledWidths(base int) []int {
	return []int{base, base * 3 / 2, base * 2}
}
