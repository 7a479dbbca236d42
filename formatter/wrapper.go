package formatter

import (
	"github.com/theoremus-urban-solutions/mvg-incidents/siri"
	"github.com/theoremus-urban-solutions/mvg-incidents/utils"
)

// BuildServiceDelivery creates a standardized ServiceDelivery wrapper
// with ResponseTimestamp and ProducerRef (codespace)
func BuildServiceDelivery(codespace string) siri.ServiceDelivery {
	if codespace == "" {
		codespace = "UNKNOWN"
	}

	return siri.ServiceDelivery{
		ResponseTimestamp: utils.Iso8601Now(),
		ProducerRef:       codespace,
	}
}

// WrapSituationExchangeResponse wraps a SX delivery in a complete SIRI response
func WrapSituationExchangeResponse(sx siri.SituationExchangeDelivery, codespace string) *siri.SiriResponse {
	sd := BuildServiceDelivery(codespace)
	sd.SituationExchangeDelivery = []siri.SituationExchangeDelivery{sx}

	return &siri.SiriResponse{
		Siri: siri.SiriServiceDelivery{
			ServiceDelivery: sd,
		},
	}
}
