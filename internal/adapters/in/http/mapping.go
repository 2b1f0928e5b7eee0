package http

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/generated/servers"
	"parcel/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func localityFromAPI(param string, l servers.Locality) (kernel.Locality, error) {
	locality, err := kernel.NewLocality(l.City, deref(l.Region))
	if err != nil {
		return kernel.Locality{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return locality, nil
}

func localityToAPI(l kernel.Locality) servers.Locality {
	out := servers.Locality{City: l.City()}
	if l.HasRegion() {
		region := l.Region()
		out.Region = &region
	}
	return out
}

// quoteRequestFromAPI builds a validated quote request. Every violation is
// reported, not just the first.
func quoteRequestFromAPI(
	origin, destination servers.Locality,
	parcel servers.Parcel,
	class *string,
	policy quote.Policy,
) (quote.Request, error) {
	from, originErr := localityFromAPI("origin", origin)
	to, destinationErr := localityFromAPI("destination", destination)
	dimensions, dimensionsErr := quote.NewDimensions(parcel.Width, parcel.Length, parcel.Height)
	shippingClass, classErr := quote.ParseShippingClass(deref(class))

	if err := errors.Join(originErr, destinationErr, dimensionsErr, classErr); err != nil {
		return quote.Request{}, err
	}

	return quote.NewRequest(dimensions, parcel.Weight, parcel.DeclaredValue, from, to, shippingClass, policy)
}

func shipmentToAPI(s *shipment.Shipment) servers.Shipment {
	return servers.Shipment{
		Id:           s.ID().Bytes(),
		TrackingCode: s.TrackingCode().String(),
		Status:       s.Status().String(),
		Class:        s.Class().String(),
		Cost:         s.Cost(),
		Insurance:    s.Insurance(),
		CourierId:    uuidPtr(s.Courier()),
		CreatedAt:    s.CreatedAt(),
		LastUpdated:  s.LastUpdated(),
	}
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
