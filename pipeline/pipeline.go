package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/mvg-incidents/config"
	"github.com/theoremus-urban-solutions/mvg-incidents/converter"
	"github.com/theoremus-urban-solutions/mvg-incidents/formatter"
	"github.com/theoremus-urban-solutions/mvg-incidents/gtfsrt"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
	"github.com/theoremus-urban-solutions/mvg-incidents/utils"
)

// State names one phase of a run.
type State string

// Run phases, in order. Failed is terminal for the run that hit it.
const (
	StateIdle         State = "idle"
	StateFetching     State = "fetching"
	StateDecoding     State = "decoding"
	StateFiltering    State = "filtering"
	StateTransforming State = "transforming"
	StateEmitting     State = "emitting"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Pipeline fetches messages and writes the rendered document to out.
type Pipeline struct {
	cfg    config.AppConfig
	client *mvg.Client
	loc    *time.Location
	out    io.Writer
	log    zerolog.Logger
	state  State
}

// New builds a pipeline for one output writer. It fails when the
// configured timezone is unknown.
func New(cfg config.AppConfig, out io.Writer, logger zerolog.Logger) (*Pipeline, error) {
	loc, err := utils.LoadLocation(cfg.Output.Timezone)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		client: mvg.NewClient(cfg.API.URL, cfg.API.Timeout()),
		loc:    loc,
		out:    out,
		log:    logger,
		state:  StateIdle,
	}, nil
}

// State reports the phase the last run reached.
func (p *Pipeline) State() State { return p.state }

func (p *Pipeline) setState(s State) {
	p.state = s
	p.log.Debug().Str("state", string(s)).Msg("state change")
}

func (p *Pipeline) fail(err error) error {
	p.state = StateFailed
	return err
}

// Run executes one fetch, transform, emit cycle. Nothing is written to
// out unless the whole cycle up to emitting succeeded.
func (p *Pipeline) Run(ctx context.Context) error {
	p.setState(StateFetching)
	p.log.Info().Str("url", p.client.URL()).Msg("fetching messages")
	body, err := p.client.Fetch(ctx)
	if err != nil {
		return p.fail(err)
	}
	p.log.Debug().Int("bytes", len(body)).Msg("fetched response body")

	p.setState(StateDecoding)
	msgs, skipped, err := mvg.DecodeMessages(body)
	if err != nil {
		return p.fail(err)
	}
	if skipped > 0 {
		p.log.Warn().Int("skipped", skipped).Msg("records did not decode")
	}

	p.setState(StateFiltering)
	matched := converter.FilterByType(msgs, p.cfg.API.MessageType)

	p.setState(StateTransforming)
	conv := converter.New(p.loc)
	incidents := conv.Transform(matched)
	conv.Warnings().LogAll(p.log)
	p.log.Info().Msgf("found %d incident(s)", len(incidents))

	p.setState(StateEmitting)
	doc, binary, err := p.render(matched, incidents, conv)
	if err != nil {
		return p.fail(err)
	}
	if _, err := p.out.Write(doc); err != nil {
		return p.fail(fmt.Errorf("write output: %w", err))
	}
	if !binary {
		if _, err := io.WriteString(p.out, "\n"); err != nil {
			return p.fail(fmt.Errorf("write output: %w", err))
		}
	}

	p.setState(StateDone)
	return nil
}

// render serializes the run result in the configured format. The binary
// flag tells Run whether a trailing newline is appropriate.
func (p *Pipeline) render(msgs []mvg.Message, incidents []converter.Incident, conv *converter.Converter) ([]byte, bool, error) {
	switch p.cfg.Output.Format {
	case "siri":
		sx := conv.BuildSituationExchange(msgs, p.cfg.Output.Producer)
		res := formatter.WrapSituationExchangeResponse(sx, p.cfg.Output.Producer)
		b, err := formatter.MarshalJSON(res, p.cfg.Output.Compact)
		return b, false, err
	case "siri-xml":
		sx := conv.BuildSituationExchange(msgs, p.cfg.Output.Producer)
		res := formatter.WrapSituationExchangeResponse(sx, p.cfg.Output.Producer)
		return formatter.MarshalXML(res), false, nil
	case "gtfsrt":
		b, err := gtfsrt.Marshal(gtfsrt.BuildServiceAlerts(msgs))
		return b, true, err
	case "gtfsrt-json":
		b, err := gtfsrt.MarshalJSON(gtfsrt.BuildServiceAlerts(msgs))
		return b, false, err
	default:
		b, err := formatter.MarshalJSON(incidents, p.cfg.Output.Compact)
		return b, false, err
	}
}
