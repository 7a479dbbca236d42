package server

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/mvg-incidents/converter"
	"github.com/theoremus-urban-solutions/mvg-incidents/formatter"
	"github.com/theoremus-urban-solutions/mvg-incidents/gtfsrt"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
)

type healthResponse struct {
	Status   string `json:"status"`
	Endpoint string `json:"endpoint"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:   "ok",
		Endpoint: s.cfg.API.URL,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// fetchMessages runs the fetch-decode-filter pass shared by all delivery
// handlers. The returned converter carries the request's warning state.
func (s *Server) fetchMessages(r *http.Request) ([]mvg.Message, *converter.Converter, error) {
	body, err := s.client.Fetch(r.Context())
	if err != nil {
		return nil, nil, err
	}
	msgs, skipped, err := mvg.DecodeMessages(body)
	if err != nil {
		return nil, nil, err
	}
	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Msg("records did not decode")
	}
	return converter.FilterByType(msgs, s.cfg.API.MessageType), converter.New(s.loc), nil
}

func (s *Server) handleIncidentsJSON(w http.ResponseWriter, r *http.Request) {
	msgs, conv, err := s.fetchMessages(r)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	incidents := conv.Transform(msgs)
	conv.Warnings().LogAll(s.log)

	buf, err := formatter.MarshalJSON(incidents, false)
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func (s *Server) handleSituationExchangeJSON(w http.ResponseWriter, r *http.Request) {
	msgs, conv, err := s.fetchMessages(r)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	sx := conv.BuildSituationExchange(msgs, s.cfg.Output.Producer)
	res := formatter.WrapSituationExchangeResponse(sx, s.cfg.Output.Producer)

	buf, err := formatter.MarshalJSON(res, false)
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func (s *Server) handleSituationExchangeXML(w http.ResponseWriter, r *http.Request) {
	msgs, conv, err := s.fetchMessages(r)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	sx := conv.BuildSituationExchange(msgs, s.cfg.Output.Producer)
	res := formatter.WrapSituationExchangeResponse(sx, s.cfg.Output.Producer)

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write(formatter.MarshalXML(res))
}

func (s *Server) handleServiceAlertsPB(w http.ResponseWriter, r *http.Request) {
	msgs, _, err := s.fetchMessages(r)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	buf, err := gtfsrt.Marshal(gtfsrt.BuildServiceAlerts(msgs))
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/x-protobuf")
	_, _ = w.Write(buf)
}

func (s *Server) handleServiceAlertsJSON(w http.ResponseWriter, r *http.Request) {
	msgs, _, err := s.fetchMessages(r)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	buf, err := gtfsrt.MarshalJSON(gtfsrt.BuildServiceAlerts(msgs))
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("upstream fetch failed")
	s.writeError(w, http.StatusBadGateway, err)
}

func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("response build failed")
	s.writeError(w, http.StatusInternalServerError, err)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
