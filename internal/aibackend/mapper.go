package aibackend

import (
	"strconv"

	"github.com/WeakCookie/fit-path-hackathon/internal/prediction"

	log "github.com/sirupsen/logrus"
)

// MapSuggestion turns the claims of an AI server response into a prediction.
// Unknown claim types and non numeric values of numeric claims are skipped.
func MapSuggestion(resp SuggestionResponse) prediction.Prediction {
	p := prediction.Prediction{
		Date:    resp.DailySuggestions.Date,
		PaperID: strconv.Itoa(resp.PaperID),
		Source:  prediction.SourceAI,
	}

	for _, claim := range resp.DailySuggestions.Claims {
		switch claim.Type {
		case ClaimExercise:
			p.Fields.Exercise = &prediction.Field[string]{
				Value:     claim.ModifiedValue.String(),
				Reference: claim.Reference,
				Reasoning: claim.Reasoning,
			}
		case ClaimIntensity:
			p.Fields.Intensity = numericField(claim)
		case ClaimDuration:
			p.Fields.Duration = numericField(claim)
		case ClaimRestTime:
			p.Fields.RestTime = numericField(claim)
		default:
			log.Debugf("ai suggestion for paper %d: ignoring claim type [%s]", resp.PaperID, claim.Type)
		}
	}

	return p
}

func numericField(claim Claim) *prediction.Field[float64] {
	v, ok := claim.ModifiedValue.Float64()
	if !ok {
		log.Warnf("ai suggestion: %s claim value [%s] is not a number", claim.Type, claim.ModifiedValue)
		return nil
	}
	return &prediction.Field[float64]{
		Value:     v,
		Reference: claim.Reference,
		Reasoning: claim.Reasoning,
	}
}
