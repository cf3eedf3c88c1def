package cloudinary

import "strconv"

// Quality is a q_ value: one of the automatic levels or a numeric quality.
type Quality string

const (
	QualityAuto Quality = "auto"
	QualityBest Quality = "auto:best"
	QualityGood Quality = "auto:good"
	QualityEco  Quality = "auto:eco"
	QualityLow  Quality = "auto:low"
)

// QualityLevel returns a numeric quality such as q_80.
func QualityLevel(n int) Quality {
	return Quality(strconv.Itoa(n))
}

// Format is an output format for f_ and fl_ tokens.
type Format string

const (
	FormatAuto Format = "auto"
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
	FormatJPG  Format = "jpg"
	FormatPNG  Format = "png"
)

// Crop is a c_ crop mode.
type Crop string

const (
	CropFill  Crop = "fill"
	CropFit   Crop = "fit"
	CropScale Crop = "scale"
	CropPad   Crop = "pad"
	CropThumb Crop = "thumb"
)

// Gravity is a g_ focus hint.
type Gravity string

const (
	GravityAuto   Gravity = "auto"
	GravityFace   Gravity = "face"
	GravityFaces  Gravity = "faces"
	GravityCenter Gravity = "center"
	GravityNorth  Gravity = "north"
	GravitySouth  Gravity = "south"
)

// DPR is a device-pixel-ratio hint.
type DPR string

// DPRAuto lets the CDN pick the ratio from client hints.
const DPRAuto DPR = "auto"

// DPRValue returns a fixed ratio such as dpr_2.0.
func DPRValue(v float64) DPR {
	return DPR(strconv.FormatFloat(v, 'f', 1, 64))
}

// Options describes one image transformation. Every field is optional and
// a zero value means the option is absent from the generated URL.
type Options struct {
	Width       int
	Height      int
	AspectRatio string
	Quality     Quality
	Format      Format
	FetchFormat Format
	Crop        Crop
	Gravity     Gravity
	Effect      string
	Blur        int
	DPR         DPR
}

// Merge returns a copy of o with every option set in over replacing the
// value in o.
func (o Options) Merge(over Options) Options {
	if over.Width != 0 {
		o.Width = over.Width
	}
	if over.Height != 0 {
		o.Height = over.Height
	}
	if over.AspectRatio != "" {
		o.AspectRatio = over.AspectRatio
	}
	if over.Quality != "" {
		o.Quality = over.Quality
	}
	if over.Format != "" {
		o.Format = over.Format
	}
	if over.FetchFormat != "" {
		o.FetchFormat = over.FetchFormat
	}
	if over.Crop != "" {
		o.Crop = over.Crop
	}
	if over.Gravity != "" {
		o.Gravity = over.Gravity
	}
	if over.Effect != "" {
		o.Effect = over.Effect
	}
	if over.Blur != 0 {
		o.Blur = over.Blur
	}
	if over.DPR != "" {
		o.DPR = over.DPR
	}
	return o
}

// tokens renders the option part of the transformation in its fixed order.
func (o Options) tokens() []string {
	var t []string
	if o.Width > 0 {
		t = append(t, "w_"+strconv.Itoa(o.Width))
	}
	if o.Height > 0 {
		t = append(t, "h_"+strconv.Itoa(o.Height))
	}
	if o.AspectRatio != "" {
		t = append(t, "ar_"+o.AspectRatio)
	}
	if o.Quality != "" {
		t = append(t, "q_"+string(o.Quality))
	}
	if o.Format != "" {
		t = append(t, "f_"+string(o.Format))
	}
	if o.FetchFormat != "" {
		t = append(t, "fl_"+string(o.FetchFormat))
	}
	if o.Crop != "" {
		t = append(t, "c_"+string(o.Crop))
	}
	if o.Gravity != "" {
		t = append(t, "g_"+string(o.Gravity))
	}
	if o.Effect != "" {
		t = append(t, "e_"+o.Effect)
	}
	if o.Blur > 0 {
		t = append(t, "e_blur:"+strconv.Itoa(o.Blur))
	}
	if o.DPR != "" {
		t = append(t, "dpr_"+string(o.DPR))
	}
	return t
}
