package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"autonomous-barman/internal/bar"
	"autonomous-barman/internal/intent"
	"autonomous-barman/internal/model"
	"autonomous-barman/pkg/llmprovider"
)

const apologyNote = "⚠️ Lo siento, no pude comunicarme con la máquina para preparar tu %s. Avisa al personal de la barra, por favor."

// Chat runs one request through Idle -> IntentResolved -> [Planned -> Dispatched] -> Responded.
// The model is called exactly once and a confirmed order is dispatched at most once.
func (uc *implUseCase) Chat(ctx context.Context, input bar.ChatInput) (bar.ChatOutput, error) {
	start := time.Now()
	ctx, span := uc.tracer.Start(ctx, "bar.Chat", trace.WithAttributes(
		attribute.String("bar.resolver", string(uc.resolver.Strategy())),
		attribute.Int("bar.history_turns", len(input.History)),
	))
	defer span.End()

	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return bar.ChatOutput{}, bar.ErrEmptyMessage
	}
	history := trimHistory(input.History, uc.maxHistory)

	var res intent.Result
	pre := uc.resolver.Strategy() == intent.StrategyPattern
	if pre {
		res = uc.resolver.Resolve(ctx, intent.Input{UserText: msg})
	}

	reply, err := uc.generate(ctx, msg, history, res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "llm failed")
		uc.metrics.llmFailures.Add(ctx, 1)
		uc.l.Errorf(ctx, "bar.usecase.Chat: llm: %v", err)
		return bar.ChatOutput{}, fmt.Errorf("%w: %v", bar.ErrLLMUnavailable, err)
	}

	text := reply
	if !pre {
		res = uc.resolver.Resolve(ctx, intent.Input{UserText: msg, ModelText: reply})
		text = res.VisibleText
	}

	uc.l.Infof(ctx, "bar.usecase.Chat: intent=%s recipe=%q rule=%s", res.Kind, res.RecipeID, res.Rule)
	span.SetAttributes(
		attribute.String("bar.intent", res.Kind.String()),
		attribute.String("bar.rule", res.Rule),
		attribute.String("bar.recipe_id", res.RecipeID),
	)

	out := bar.ChatOutput{
		Text: text,
		Intent: bar.IntentInfo{
			Kind:     res.Kind,
			RecipeID: res.RecipeID,
			Rule:     res.Rule,
			Outcome:  res.Outcome,
		},
	}

	if res.Confirmed() {
		uc.prepare(ctx, res.RecipeID, &out)
	}

	uc.metrics.chats.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", res.Kind.String())))
	uc.metrics.chatLatency.Record(ctx, time.Since(start).Seconds())
	return out, nil
}

// generate makes the single model call for this request.
func (uc *implUseCase) generate(ctx context.Context, msg string, history []model.ConversationTurn, pre intent.Result) (string, error) {
	ctx, span := uc.tracer.Start(ctx, "bar.generate")
	defer span.End()

	system := llmprovider.TextMessage("system", uc.systemPrompt(pre))
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          make([]llmprovider.Message, 0, len(history)+1),
	}
	for _, turn := range history {
		req.Messages = append(req.Messages, llmprovider.TextMessage(chatRole(turn.Role), turn.Content))
	}
	req.Messages = append(req.Messages, llmprovider.TextMessage("user", msg))

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, req)
	uc.metrics.llmLatency.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(
		attribute.String("llm.provider", resp.ProviderName),
		attribute.String("llm.model", resp.ModelName),
	)
	return strings.TrimSpace(resp.Content.Text()), nil
}

// prepare compiles and dispatches the confirmed recipe. It never fails: problems end up
// in the controller result and an apology on the reply.
func (uc *implUseCase) prepare(ctx context.Context, recipeID string, out *bar.ChatOutput) {
	ctx, span := uc.tracer.Start(ctx, "bar.prepare", trace.WithAttributes(attribute.String("bar.recipe_id", recipeID)))
	defer span.End()

	recipe, ok := uc.cat.Get(recipeID)
	if !ok {
		// Resolvers only confirm catalog ids.
		uc.l.Errorf(ctx, "bar.usecase.prepare: confirmed unknown recipe %q", recipeID)
		return
	}

	plan := uc.compiler.Compile(recipe)
	out.ShouldPrepare = true
	out.Recipe = &recipe
	out.PourPlan = &plan

	var result model.ControllerResult
	if len(plan.Pumps) == 0 {
		uc.l.Warnf(ctx, "bar.usecase.prepare: %s has no provisioned ingredient, not dispatched", recipe.ID)
		result = model.NewControllerError(fmt.Sprintf("Ningún ingrediente de %s tiene bomba asignada", recipe.Name))
	} else {
		result = uc.dispatcher.Dispatch(ctx, plan)
	}
	out.ControllerResult = &result

	status := "ok"
	if result.Error {
		status = "error"
		span.SetStatus(codes.Error, result.Message)
		out.Text = appendNote(out.Text, fmt.Sprintf(apologyNote, recipe.Name))
	}
	uc.metrics.orders.Add(ctx, 1, metric.WithAttributes(
		attribute.String("recipe", recipe.ID),
		attribute.String("result", status),
	))
}

// trimHistory keeps the most recent limit turns and drops empty ones.
func trimHistory(history []model.ConversationTurn, limit int) []model.ConversationTurn {
	out := make([]model.ConversationTurn, 0, len(history))
	for _, t := range history {
		if strings.TrimSpace(t.Content) != "" {
			out = append(out, t)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// chatRole maps caller roles onto the two the model accepts as history.
func chatRole(r model.Role) string {
	if r == model.RoleAssistant || r == "model" {
		return string(model.RoleAssistant)
	}
	return string(model.RoleUser)
}

func appendNote(text, note string) string {
	if text == "" {
		return note
	}
	return text + "\n\n" + note
}
