package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/intent"
	"autonomous-barman/internal/model"
	"autonomous-barman/internal/pour"
	"autonomous-barman/pkg/llmprovider"
	pkgLog "autonomous-barman/pkg/log"
	"autonomous-barman/pkg/telemetry"
)

// LLM is the single-call generation capability (llmprovider.Manager).
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Dispatcher delivers pour plans to the controller (dispatch.Client).
type Dispatcher interface {
	Dispatch(ctx context.Context, plan model.PourPlan) model.ControllerResult
	Status(ctx context.Context) model.DispenserStatus
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        LLM
	resolver   intent.Resolver
	cat        *catalog.Catalog
	reg        *catalog.Registry
	compiler   *pour.Compiler
	dispatcher Dispatcher
	maxHistory int

	tracer  trace.Tracer
	metrics metrics
	prompt  promptParts
}

// New creates a new bar UseCase instance.
// maxHistory caps how many prior turns reach the model; zero keeps them all.
func New(
	l pkgLog.Logger,
	llm LLM,
	resolver intent.Resolver,
	cat *catalog.Catalog,
	reg *catalog.Registry,
	compiler *pour.Compiler,
	dispatcher Dispatcher,
	maxHistory int,
) *implUseCase {
	uc := &implUseCase{
		l:          l,
		llm:        llm,
		resolver:   resolver,
		cat:        cat,
		reg:        reg,
		compiler:   compiler,
		dispatcher: dispatcher,
		maxHistory: maxHistory,
		tracer:     otel.Tracer(telemetry.InstrumentationName),
		metrics:    newMetrics(otel.Meter(telemetry.InstrumentationName)),
	}
	uc.prompt = uc.buildPromptParts()
	return uc
}
