package services

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"parcel/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

const trackingSuffixModulo = 100000

// TrackingCodeGenerator produces codes shaped CDE-XXXXXXXX-NNNNN: eight
// upper-case hex characters of a random UUID and the last five digits of the
// Unix millisecond clock. Codes are unique only probabilistically; storage
// enforces uniqueness and callers retry on collision.
type TrackingCodeGenerator struct {
	random io.Reader
	now    func() time.Time
}

// NewTrackingCodeGenerator uses crypto/rand and time.Now when random or now are nil.
func NewTrackingCodeGenerator(random io.Reader, now func() time.Time) TrackingCodeGenerator {
	if random == nil {
		random = rand.Reader
	}
	if now == nil {
		now = time.Now
	}
	return TrackingCodeGenerator{random: random, now: now}
}

func (g TrackingCodeGenerator) Generate() (shipment.TrackingCode, error) {
	id, err := uuid.NewRandomFromReader(g.random)
	if err != nil {
		return shipment.TrackingCode{}, fmt.Errorf("generate tracking code: %w", err)
	}

	random := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])

	suffix := g.now().UnixMilli() % trackingSuffixModulo
	if suffix < 0 {
		suffix += trackingSuffixModulo
	}

	return shipment.ParseTrackingCode(fmt.Sprintf("%s-%s-%05d", shipment.TrackingCodePrefix, random, suffix))
}
