package cloudinary

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genOptions() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 4000),
		gen.IntRange(0, 4000),
		gen.OneConstOf("", "4:3", "16:9", "1:1"),
		gen.OneConstOf(Quality(""), QualityAuto, QualityBest, QualityGood, QualityEco, QualityLow, QualityLevel(40)),
		gen.OneConstOf(Format(""), FormatAuto, FormatWebP, FormatAVIF, FormatJPG, FormatPNG),
		gen.OneConstOf(Crop(""), CropFill, CropFit, CropScale, CropPad, CropThumb),
		gen.OneConstOf(Gravity(""), GravityAuto, GravityFace, GravityFaces, GravityCenter),
		gen.IntRange(-10, 2000),
		gen.OneConstOf(DPR(""), DPRAuto, DPRValue(2)),
	).Map(func(v []interface{}) Options {
		return Options{
			Width:       v[0].(int),
			Height:      v[1].(int),
			AspectRatio: v[2].(string),
			Quality:     v[3].(Quality),
			Format:      v[4].(Format),
			Crop:        v[5].(Crop),
			Gravity:     v[6].(Gravity),
			Blur:        v[7].(int),
			DPR:         v[8].(DPR),
		}
	})
}

func TestBuilderProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	b := NewFetch("acme")

	properties.Property("identical inputs give identical URLs", prop.ForAll(
		func(path string, o Options) bool {
			src := "https://images.example/" + path
			return b.URL(src, o) == b.URL(src, o)
		},
		gen.AlphaString(),
		genOptions(),
	))

	properties.Property("empty source always gives empty URL", prop.ForAll(
		func(o Options) bool {
			return b.URL("", o) == ""
		},
		genOptions(),
	))

	properties.Property("performance flags always close the transformation", prop.ForAll(
		func(o Options) bool {
			u := b.URL("//images.example/a.jpg", o)
			return strings.Contains(u, "fl_progressive,fl_immutable_cache/https%3A%2F%2Fimages.example%2Fa.jpg")
		},
		genOptions(),
	))

	properties.Property("encoded source is a single path segment", prop.ForAll(
		func(path string) bool {
			u := b.URL("https://images.example/"+path+"/x y.jpg", Options{})
			last := u[strings.LastIndex(u, "/")+1:]
			return strings.HasPrefix(last, "https%3A%2F%2Fimages.example%2F")
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
