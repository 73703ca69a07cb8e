package entity

// EyeRx holds one eye's glasses prescription values. Values are kept as the
// strings the optometrist enters ("-2.50", "+1.75", "180") so signs and
// quarter-diopter notation survive round trips to print.
type EyeRx struct {
	Sphere   string
	Cylinder string
	Axis     string
	Add      string
	PD       string
}

// GlassesRx glasses prescription, right (OD) and left (OS) eye.
type GlassesRx struct {
	OD EyeRx
	OS EyeRx
}

// ContactEyeRx one eye's contact lens prescription.
type ContactEyeRx struct {
	Sphere    string
	Cylinder  string
	Axis      string
	BaseCurve string
	Diameter  string
}

// ContactLensRx contact lens prescription, right and left eye.
type ContactLensRx struct {
	OD ContactEyeRx
	OS ContactEyeRx
}
