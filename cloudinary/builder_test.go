package cloudinary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fetchBase = "https://res.cloudinary.com/acme/image/fetch/"

func TestURLEmptySource(t *testing.T) {
	b := NewFetch("acme")
	assert.Equal(t, "", b.URL("", Options{}))
	assert.Equal(t, "", b.URL("", Hero))
	assert.Equal(t, "", NewUpload("acme").URL("", Options{Width: 10}))
}

func TestURLProjectOptionsOrder(t *testing.T) {
	b := NewFetch("acme")
	got := b.URL("//images.example/photo.jpg", Options{
		Width:       800,
		Height:      600,
		AspectRatio: "4:3",
		Crop:        CropFill,
		Gravity:     GravityAuto,
		Quality:     QualityGood,
	})
	want := fetchBase +
		"w_800,h_600,ar_4:3,q_auto:good,f_auto,fl_auto,c_fill,g_auto,dpr_auto,fl_progressive,fl_immutable_cache/" +
		"https%3A%2F%2Fimages.example%2Fphoto.jpg"
	assert.Equal(t, want, got)
	assert.Contains(t, got, "w_800,h_600,ar_4:3,q_auto:good")
}

func TestNormalizeSource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"//cdn.example/x.jpg", "https://cdn.example/x.jpg"},
		{"https://cdn.example/x.jpg", "https://cdn.example/x.jpg"},
		{"http://cdn.example/x.jpg", "http://cdn.example/x.jpg"},
		{"cdn.example/x.jpg", "https:cdn.example/x.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSource(tt.in), "NormalizeSource(%q)", tt.in)
	}
}

func TestURLProtocolRelativeIsEncodedAsHTTPS(t *testing.T) {
	got := NewFetch("acme").URL("//cdn.example/x.jpg", Options{})
	assert.True(t, strings.HasSuffix(got, "/https%3A%2F%2Fcdn.example%2Fx.jpg"), got)
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%20b%2Fc%3Fd%3D%C3%A9", encodeComponent("a b/c?d=é"))
	assert.Equal(t, "keep-_.!~*'()", encodeComponent("keep-_.!~*'()"))
	assert.Equal(t, "100%25", encodeComponent("100%"))
}

func TestURLBlurOnlyWhenPositive(t *testing.T) {
	b := New("acme", ModeFetch)
	assert.NotContains(t, b.URL("https://x/y.png", Options{Blur: -5}), "e_blur")
	assert.Contains(t, b.URL("https://x/y.png", Options{Blur: 300}), "e_blur:300")
}

func TestURLWithoutTokens(t *testing.T) {
	got := New("acme", ModeFetch).URL("https://x/y.png", Options{})
	assert.Equal(t, fetchBase+"https%3A%2F%2Fx%2Fy.png", got)
}

func TestURLAllOptionsOrder(t *testing.T) {
	b := New("acme", ModeFetch)
	got := b.URL("https://x/y.png", Options{
		DPR:         DPRValue(2),
		Blur:        50,
		Effect:      "grayscale",
		Gravity:     GravityCenter,
		Crop:        CropPad,
		FetchFormat: FormatAuto,
		Format:      FormatAVIF,
		Quality:     QualityLevel(70),
		AspectRatio: "1:1",
		Height:      10,
		Width:       20,
	})
	want := fetchBase + "w_20,h_10,ar_1:1,q_70,f_avif,fl_auto,c_pad,g_center,e_grayscale,e_blur:50,dpr_2.0/https%3A%2F%2Fx%2Fy.png"
	assert.Equal(t, want, got)
}

func TestUploadMode(t *testing.T) {
	b := NewUpload("acme")
	got := b.URL("portfolio/hero", Options{Width: 400})
	want := "https://res.cloudinary.com/acme/image/upload/w_400,q_auto:best,f_auto,c_fill,g_auto,dpr_auto,f_auto/portfolio/hero"
	assert.Equal(t, want, got)
}

func TestNewFallsBackToDefaultCloud(t *testing.T) {
	b := NewFetch("")
	assert.Equal(t, DefaultCloudName, b.CloudName())
	assert.True(t, strings.HasPrefix(b.URL("https://x/y", Options{}), DefaultOrigin+"/"+DefaultCloudName+"/image/fetch/"))
}

func TestWithOriginAndDefaults(t *testing.T) {
	b := New("acme", ModeFetch,
		WithOrigin("https://img.example.org/"),
		WithDefaults(Options{Quality: QualityEco}),
		WithFlags("fl_lossy"),
	)
	got := b.URL("https://x/y", Options{Width: 5})
	assert.Equal(t, "https://img.example.org/acme/image/fetch/w_5,q_auto:eco,fl_lossy/https%3A%2F%2Fx%2Fy", got)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	b := NewFetch("acme")
	got := b.URL("https://x/y", Options{Quality: QualityLow, Format: FormatPNG})
	assert.Contains(t, got, "/q_auto:low,f_png,fl_auto,dpr_auto,")
}

func TestPresets(t *testing.T) {
	b := NewFetch("acme")
	src := "//images.example/me.jpg"
	enc := "https%3A%2F%2Fimages.example%2Fme.jpg"
	flags := "fl_progressive,fl_immutable_cache/"

	assert.Equal(t, fetchBase+"w_800,h_600,ar_4:3,q_auto:good,f_auto,fl_auto,c_fill,g_auto,dpr_auto,"+flags+enc, b.ProjectImage(src))
	assert.Equal(t, fetchBase+"w_1920,h_1080,ar_16:9,q_auto:best,f_auto,fl_auto,c_fill,g_faces,dpr_auto,"+flags+enc, b.HeroImage(src))
	assert.Equal(t, fetchBase+"w_200,h_200,ar_1:1,q_auto:good,f_auto,fl_auto,c_thumb,g_face,dpr_auto,"+flags+enc, b.AvatarImage(src, 0))
	assert.Equal(t, fetchBase+"w_64,h_64,ar_1:1,q_auto:good,f_auto,fl_auto,c_thumb,g_face,dpr_auto,"+flags+enc, b.AvatarImage(src, 64))
	assert.Equal(t, fetchBase+"w_20,q_10,f_webp,fl_auto,e_blur:1000,dpr_auto,"+flags+enc, b.PlaceholderImage(src))

	assert.Equal(t, "", b.ProjectImage(""))
	assert.Equal(t, "", b.AvatarImage("", 10))
}

func TestResponsiveSetDefaults(t *testing.T) {
	b := NewFetch("acme")
	src := "https://images.example/a.jpg"
	set := b.ResponsiveSet(src, []int{400, 800, 1200}, Options{})

	entries := strings.Split(set.SrcSet, ", ")
	require.Len(t, entries, 3)
	assert.True(t, strings.HasSuffix(entries[0], " 400w"))
	assert.True(t, strings.HasSuffix(entries[1], " 800w"))
	assert.True(t, strings.HasSuffix(entries[2], " 1200w"))
	assert.Equal(t, b.URL(src, Options{Width: 800}), set.Src)
	assert.Equal(t, DefaultSizes, set.Sizes)

	assert.Equal(t, set, b.ResponsiveSet(src, nil, Options{}))
}

func TestResponsiveSetDoesNotMutateWidths(t *testing.T) {
	b := NewFetch("acme")
	widths := []int{1200, 300}
	b.ResponsiveSet("https://x/y", widths, Options{Crop: CropFit})
	assert.Equal(t, []int{1200, 300}, widths)
}

func TestResponsiveSetOptionsWinOverWidth(t *testing.T) {
	b := NewFetch("acme")
	set := b.ResponsiveSet("https://x/y", []int{100, 200}, Options{Width: 50})
	assert.Equal(t, b.URL("https://x/y", Options{Width: 50}), set.Src)
	assert.True(t, strings.HasSuffix(set.SrcSet, " 200w"))
	assert.NotContains(t, set.SrcSet, "w_200")
}

func TestResponsiveSetEmptySource(t *testing.T) {
	assert.Equal(t, ImageSet{}, NewFetch("acme").ResponsiveSet("", nil, Options{}))
}

func TestScaledWidths(t *testing.T) {
	assert.Equal(t, []int{400, 600, 800}, ScaledWidths(400))
	assert.Equal(t, []int{101, 151, 202}, ScaledWidths(101))
}
