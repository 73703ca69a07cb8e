package dto

import "github.com/Moein-9/optica-api/internal/domain/entity"

// NewGlassesRxDTO maps a stored glasses prescription; nil stays nil.
func NewGlassesRxDTO(rx *entity.GlassesRx) *GlassesRxDTO {
	if rx == nil {
		return nil
	}
	return &GlassesRxDTO{
		OD: EyeRxDTO{Sphere: rx.OD.Sphere, Cylinder: rx.OD.Cylinder, Axis: rx.OD.Axis, Add: rx.OD.Add, PD: rx.OD.PD},
		OS: EyeRxDTO{Sphere: rx.OS.Sphere, Cylinder: rx.OS.Cylinder, Axis: rx.OS.Axis, Add: rx.OS.Add, PD: rx.OS.PD},
	}
}

// ToEntity maps the DTO to the domain prescription; nil stays nil.
func (r *GlassesRxDTO) ToEntity() *entity.GlassesRx {
	if r == nil {
		return nil
	}
	return &entity.GlassesRx{
		OD: entity.EyeRx{Sphere: r.OD.Sphere, Cylinder: r.OD.Cylinder, Axis: r.OD.Axis, Add: r.OD.Add, PD: r.OD.PD},
		OS: entity.EyeRx{Sphere: r.OS.Sphere, Cylinder: r.OS.Cylinder, Axis: r.OS.Axis, Add: r.OS.Add, PD: r.OS.PD},
	}
}

// NewContactLensRxDTO maps a stored contact lens prescription; nil stays nil.
func NewContactLensRxDTO(rx *entity.ContactLensRx) *ContactLensRxDTO {
	if rx == nil {
		return nil
	}
	return &ContactLensRxDTO{
		OD: ContactEyeRxDTO{Sphere: rx.OD.Sphere, Cylinder: rx.OD.Cylinder, Axis: rx.OD.Axis, BaseCurve: rx.OD.BaseCurve, Diameter: rx.OD.Diameter},
		OS: ContactEyeRxDTO{Sphere: rx.OS.Sphere, Cylinder: rx.OS.Cylinder, Axis: rx.OS.Axis, BaseCurve: rx.OS.BaseCurve, Diameter: rx.OS.Diameter},
	}
}

// ToEntity maps the DTO to the domain prescription; nil stays nil.
func (r *ContactLensRxDTO) ToEntity() *entity.ContactLensRx {
	if r == nil {
		return nil
	}
	return &entity.ContactLensRx{
		OD: entity.ContactEyeRx{Sphere: r.OD.Sphere, Cylinder: r.OD.Cylinder, Axis: r.OD.Axis, BaseCurve: r.OD.BaseCurve, Diameter: r.OD.Diameter},
		OS: entity.ContactEyeRx{Sphere: r.OS.Sphere, Cylinder: r.OS.Cylinder, Axis: r.OS.Axis, BaseCurve: r.OS.BaseCurve, Diameter: r.OS.Diameter},
	}
}
