package billing

import (
	"github.com/Moein-9/optica-api/internal/application/dto"
)

// toSessionResponse projects a session into its client view.
func toSessionResponse(s *Session) *dto.SessionResponse {
	d := &s.Draft
	resp := &dto.SessionResponse{
		SessionID:   s.ID,
		Step:        string(s.Step),
		InvoiceType: string(d.InvoiceType),

		PatientID:    d.PatientID,
		PatientName:  d.PatientName,
		PatientPhone: d.PatientPhone,
		SkipPatient:  d.SkipPatient,

		SkipLens:          d.SkipLens,
		SkipFrame:         d.SkipFrame,
		FrameBrand:        d.Frame.Brand,
		FrameModel:        d.Frame.Model,
		FrameColor:        d.Frame.Color,
		FrameSize:         d.Frame.Size,
		FramePrice:        d.Frame.Price,
		LensType:          d.LensType,
		LensPrice:         d.LensPrice,
		Coating:           d.Coating,
		CoatingPrice:      d.CoatingPrice,
		Thickness:         d.Thickness,
		ThicknessPrice:    d.ThicknessPrice,
		CombinedLensPrice: d.CombinedLensPrice,

		ServiceName:  d.ServiceName,
		ServicePrice: d.ServicePrice,
		Description:  d.Description,

		Discount:      d.Discount,
		Deposit:       d.Deposit,
		Total:         d.Total,
		Remaining:     d.Remaining,
		PaymentMethod: d.PaymentMethod,
	}
	for _, item := range d.ContactItems {
		resp.ContactItems = append(resp.ContactItems, dto.ContactItemView{
			ContactLensID: item.ContactLensID,
			Brand:         item.Brand,
			Type:          item.Type,
			Power:         item.Power,
			Color:         item.Color,
			Price:         item.Price,
			Qty:           item.Qty,
		})
	}
	return resp
}
