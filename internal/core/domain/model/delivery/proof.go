package delivery

import (
	"slices"
	"strings"

	"backoffice/internal/pkg/errs"
)

// Proof is the evidence captured when a delivery is completed: an optional
// customer signature reference and any number of photo references.
type Proof struct {
	Signature string
	Photos    []string
}

func (p Proof) normalized() (Proof, error) {
	out := Proof{Signature: strings.TrimSpace(p.Signature)}
	for _, photo := range p.Photos {
		photo = strings.TrimSpace(photo)
		if photo == "" {
			return Proof{}, errs.NewValueIsInvalidError("proofOfDelivery")
		}
		out.Photos = append(out.Photos, photo)
	}
	return out, nil
}

func (p Proof) clone() Proof {
	return Proof{Signature: p.Signature, Photos: slices.Clone(p.Photos)}
}
