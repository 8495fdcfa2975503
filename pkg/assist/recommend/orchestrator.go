package recommend

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-shopassist-be/pkg/assist/intent"
	"ai-shopassist-be/pkg/assist/match"
	"ai-shopassist-be/pkg/assist/prompt"
	"ai-shopassist-be/pkg/assist/require"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/store"
)

// Gathering turns before the orchestrator recommends with whatever facts it
// has, even if the budget or use case never arrived.
const maxGatheringTurns = 3

// Discount applied to the most expensive shown product when the user objects
// to price. Alternatives must come in below this cap.
const priceObjectionCut = 0.85

// Product cards shown per recommendation.
const maxRecommendations = 3

// Orchestrator runs the conversation state machine for one turn at a time.
// It mutates the ChatState it is given; callers persist the state only when
// HandleTurn returns without error, so a failed turn leaves the stored
// conversation exactly where it was.
type Orchestrator struct {
	accessor    *catalog.Accessor
	llmProvider llm.LLMProvider
	extractor   *require.Extractor
	prompts     *prompt.Builder
	logger      *log.Logger
}

func NewOrchestrator(accessor *catalog.Accessor, llmProvider llm.LLMProvider, extractor *require.Extractor, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		accessor:    accessor,
		llmProvider: llmProvider,
		extractor:   extractor,
		prompts:     prompt.NewBuilder(),
		logger:      logger,
	}
}

// HandleTurn advances the conversation by one user message. On success the
// user message and the reply are both appended to the state's history.
func (o *Orchestrator) HandleTurn(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	if state.Stage == "" {
		state.Stage = store.StageDetectCategory
	}
	state.AppendHistory("user", message)

	var (
		decision *Decision
		err      error
	)
	switch state.Stage {
	case store.StageDetectCategory:
		decision, err = o.handleDetect(ctx, state, message)
	case store.StageGathering, store.StageRecommending:
		decision, err = o.handleGathering(ctx, state, message)
	case store.StageFollowup:
		decision, err = o.handleFollowup(ctx, state, message)
	default:
		o.logger.Printf("[CHAT] unknown stage %q, resetting to category detection", state.Stage)
		state.Stage = store.StageDetectCategory
		decision, err = o.handleDetect(ctx, state, message)
	}
	if err != nil {
		return nil, err
	}

	state.AppendHistory("assistant", decision.Message)
	return decision, nil
}

func (o *Orchestrator) handleDetect(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	category := intent.DetectCategory(message)
	if category == "" {
		return &Decision{Kind: DecisionClarify, Message: clarifyMessage(intent.Categories())}, nil
	}

	state.SelectedCategory = category
	state.Stage = store.StageGathering
	state.TurnCount = 1
	o.absorbFacts(state, message)

	// A fully specified first message skips the interview entirely.
	if state.HasUseCase && state.HasBudget {
		return o.recommend(ctx, state, message)
	}

	return &Decision{Kind: DecisionAsk, Message: o.nextQuestion(state)}, nil
}

func (o *Orchestrator) handleGathering(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	state.TurnCount++
	o.absorbFacts(state, message)

	ready := (state.HasUseCase && state.HasBudget) ||
		state.TurnCount >= maxGatheringTurns ||
		intent.IsShowMeRequest(message)
	if !ready {
		return &Decision{Kind: DecisionAsk, Message: o.nextQuestion(state)}, nil
	}
	return o.recommend(ctx, state, message)
}

// nextQuestion picks the first interview question whose fact is still
// missing.
func (o *Orchestrator) nextQuestion(state *store.ChatState) string {
	switch {
	case !state.HasUseCase:
		return purposeQuestion(state.SelectedCategory)
	case !state.HasBudget:
		return budgetQuestion(state.SelectedCategory)
	default:
		return featureQuestion(state.SelectedCategory)
	}
}

// absorbFacts advances every gathering flag a single message supports, so
// one message can carry purpose, budget and brand at once.
func (o *Orchestrator) absorbFacts(state *store.ChatState, message string) {
	if purpose := intent.DetectPurpose(message); purpose != "" && !state.HasUseCase {
		state.Purpose = purpose
		state.HasUseCase = true
	}
	if budget := require.ParseBudget(message); !budget.IsZero() {
		state.BudgetMin = budget.Min
		state.BudgetMax = budget.Max
		state.HasBudget = true
	}
	if brand := require.InferBrand(message); brand != "" {
		state.Brand = brand
	}
}

// recommend runs the full pipeline: requirement extraction, constraint
// matching against the catalog, model-written presentation, and validation
// of every product the model names.
func (o *Orchestrator) recommend(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	state.Stage = store.StageRecommending

	candidates, err := o.accessor.Products(ctx, state.SelectedCategory)
	if err != nil {
		return nil, fmt.Errorf("loading %s catalog: %w", state.SelectedCategory, err)
	}
	if len(candidates) == 0 {
		state.Stage = store.StageFollowup
		return &Decision{Kind: DecisionAnswer, Message: emptyCategoryMessage(state.SelectedCategory)}, nil
	}

	reqs, _ := o.extractor.Extract(ctx, state.SelectedCategory, message, state.History)
	o.mergeGathered(state, reqs)

	matched, tier := match.Match(reqs, candidates)
	if len(matched) > maxRecommendations {
		matched = matched[:maxRecommendations]
	}
	o.logger.Printf("[CHAT] matched %d %s products at tier %s", len(matched), state.SelectedCategory, tier)

	reply, products, err := o.presentRecommendation(ctx, state, reqs, matched, tier)
	if err != nil {
		return nil, err
	}

	state.RecommendedProducts = products
	state.HasShownInitialProducts = true
	state.Stage = store.StageFollowup
	return &Decision{Kind: DecisionRecommend, Message: reply, Products: products, Tier: tier}, nil
}

// presentRecommendation asks the model to write the pitch. The pitch is
// trusted for prose only; the product list always comes out of the matcher
// candidates, with hallucinated names silently dropped. A transport failure
// propagates so the turn fails without persisting; a reply that merely
// refuses to parse falls back to the matcher result with a canned message.
func (o *Orchestrator) presentRecommendation(ctx context.Context, state *store.ChatState, reqs *require.Set, matched []store.Product, tier match.Tier) (string, []store.Product, error) {
	fallbackReply := tierPreface(tier) + recommendFallbackMessage(state.SelectedCategory)

	response, err := o.llmProvider.Generate(ctx, o.prompts.Recommendation(reqs, matched, state.History), llm.WithTemperature(0.7))
	if err != nil {
		return "", nil, fmt.Errorf("recommendation completion: %w", err)
	}

	completion, err := require.ParseCompletion(response)
	if err != nil {
		o.logger.Printf("[CHAT] unparsable presentation, using matcher result: %v", err)
		return fallbackReply, matched, nil
	}

	products := selectByName(completion.RecommendedProducts, matched)
	if len(products) == 0 {
		products = matched
	}
	reply := strings.TrimSpace(completion.Message)
	if reply == "" {
		reply = fallbackReply
	} else if preface := tierPreface(tier); preface != "" {
		reply = preface + reply
	}
	return reply, products, nil
}

func (o *Orchestrator) handleFollowup(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	state.TurnCount++
	followup := intent.ClassifyFollowup(message, state)

	switch followup.Kind {
	case intent.FollowupCategorySwitch:
		state.SwitchCategory(followup.SwitchCategory)
		o.absorbFacts(state, message)
		if state.HasUseCase && state.HasBudget {
			return o.recommend(ctx, state, message)
		}
		return &Decision{Kind: DecisionAsk, Message: switchMessage(state.SelectedCategory)}, nil

	case intent.FollowupClosing:
		state.Close()
		return &Decision{Kind: DecisionClosing, Message: closingMessage()}, nil

	case intent.FollowupComparison:
		return o.handleComparison(ctx, state, message, followup.MentionedNames)

	case intent.FollowupPriceObjection:
		return o.handlePriceObjection(ctx, state, message)

	case intent.FollowupRejection:
		return o.handleRejection(ctx, state, message)

	case intent.FollowupProductQuestion:
		return o.handleProductQuestion(ctx, state, message, followup.MentionedNames)

	default:
		return o.handleGeneralFollowup(ctx, state, message)
	}
}

// handleComparison compares the named products, or everything currently on
// display when the message names fewer than two. The comparison table is a
// structured payload; the model is told to keep it out of the prose.
func (o *Orchestrator) handleComparison(ctx context.Context, state *store.ChatState, message string, names []string) (*Decision, error) {
	subjects := selectByName(names, state.RecommendedProducts)
	if len(subjects) < 2 {
		subjects = state.RecommendedProducts
	}
	if len(subjects) < 2 {
		return &Decision{Kind: DecisionAnswer, Message: "I need at least two products on the table to compare. Would you like to see some recommendations first?"}, nil
	}

	response, err := o.llmProvider.Generate(ctx, o.prompts.Comparison(message, subjects), llm.WithTemperature(0.3))
	if err != nil {
		return nil, fmt.Errorf("comparison completion: %w", err)
	}

	completion, err := require.ParseCompletion(response)
	if err != nil || len(completion.ComparisonProducts) < 2 {
		o.logger.Printf("[CHAT] unusable comparison completion, building table locally")
		return &Decision{
			Kind:       DecisionCompare,
			Message:    "Here's how they stack up side by side:",
			Comparison: localComparison(subjects),
		}, nil
	}

	// Only products actually shown may appear in the table.
	valid := selectByName(completion.ComparisonProducts, subjects)
	if len(valid) < 2 {
		return &Decision{
			Kind:       DecisionCompare,
			Message:    "Here's how they stack up side by side:",
			Comparison: localComparison(subjects),
		}, nil
	}

	comparison := &Comparison{Features: completion.ComparisonFeatures}
	for _, p := range valid {
		comparison.Products = append(comparison.Products, p.Name)
	}
	if len(comparison.Features) == 0 {
		comparison.Features = localComparison(valid).Features
	}
	return &Decision{Kind: DecisionCompare, Message: completion.Message, Comparison: comparison}, nil
}

// handlePriceObjection rejects what is on display and reruns the search with
// a hard ceiling well below the most expensive shown product.
func (o *Orchestrator) handlePriceObjection(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	ceiling, ok := match.MaxPrice(state.RecommendedProducts)
	rejectShown(state)

	candidates, err := o.accessor.Products(ctx, state.SelectedCategory)
	if err != nil {
		return nil, fmt.Errorf("loading %s catalog: %w", state.SelectedCategory, err)
	}

	pool := match.Exclude(candidates, state.RejectedProducts)
	var limit float64
	if ok {
		limit = ceiling * priceObjectionCut
		pool = match.CheaperThan(pool, limit)
	}
	// An explicit budget in the objection narrows the pool further. The
	// stated number itself is still acceptable.
	if budget := require.ParseBudget(message); budget.Max != nil {
		state.BudgetMax = budget.Max
		state.HasBudget = true
		pool = match.AtMost(pool, *budget.Max)
	}
	if len(pool) == 0 {
		return &Decision{Kind: DecisionAnswer, Message: noCheaperMessage()}, nil
	}
	if len(pool) > maxRecommendations {
		pool = pool[:maxRecommendations]
	}

	reply, products, err := o.presentAlternatives(ctx, state, message, pool, limit)
	if err != nil {
		return nil, err
	}
	state.RecommendedProducts = products
	if reply == "" {
		reply = cheaperPreface(limitOrMax(limit, products))
	}
	return &Decision{Kind: DecisionRecommend, Message: reply, Products: products}, nil
}

// handleRejection drops the shown products and reruns the matcher over what
// remains, honoring the stickiness of everything gathered so far.
func (o *Orchestrator) handleRejection(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	rejectShown(state)
	o.absorbFacts(state, message)

	candidates, err := o.accessor.Products(ctx, state.SelectedCategory)
	if err != nil {
		return nil, fmt.Errorf("loading %s catalog: %w", state.SelectedCategory, err)
	}

	pool := candidates
	if !intent.WantsRejectedReconsidered(message) {
		pool = match.Exclude(candidates, state.RejectedProducts)
	}
	if len(pool) == 0 {
		return &Decision{Kind: DecisionAnswer, Message: fmt.Sprintf("You've seen everything I have in %s, I'm afraid. Want to revisit one of the earlier options, or try another category?", state.SelectedCategory)}, nil
	}

	matched, tier := match.Match(o.gatheredSet(state), pool)
	if len(matched) > maxRecommendations {
		matched = matched[:maxRecommendations]
	}

	reply, products, err := o.presentAlternatives(ctx, state, message, matched, 0)
	if err != nil {
		return nil, err
	}
	state.RecommendedProducts = products
	if reply == "" {
		reply = "No problem, here are some other options you might like better:"
	}
	return &Decision{Kind: DecisionRecommend, Message: reply, Products: products, Tier: tier}, nil
}

// handleProductQuestion answers a question about a shown product without
// changing what is on display.
func (o *Orchestrator) handleProductQuestion(ctx context.Context, state *store.ChatState, message string, names []string) (*Decision, error) {
	focus := selectByName(names, state.RecommendedProducts)
	if len(focus) == 0 {
		focus = state.RecommendedProducts
	}

	response, err := o.llmProvider.Generate(ctx, o.prompts.ProductQuestion(message, focus, state.History), llm.WithTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("product question completion: %w", err)
	}

	reply := response
	if completion, perr := require.ParseCompletion(response); perr == nil && strings.TrimSpace(completion.Message) != "" {
		reply = completion.Message
	}
	return &Decision{Kind: DecisionAnswer, Message: strings.TrimSpace(reply)}, nil
}

// handleGeneralFollowup delegates anything unclassifiable to the model with
// the full catalog snapshot. The model may answer in prose or steer toward
// alternatives; either way its product names are validated before display.
func (o *Orchestrator) handleGeneralFollowup(ctx context.Context, state *store.ChatState, message string) (*Decision, error) {
	candidates, err := o.accessor.Products(ctx, state.SelectedCategory)
	if err != nil {
		return nil, fmt.Errorf("loading %s catalog: %w", state.SelectedCategory, err)
	}
	pool := match.Exclude(candidates, state.RejectedProducts)

	response, err := o.llmProvider.Generate(ctx, o.prompts.Followup(message, state, pool, 0), llm.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("followup completion: %w", err)
	}

	completion, err := require.ParseCompletion(response)
	if err != nil {
		return &Decision{Kind: DecisionAnswer, Message: strings.TrimSpace(response)}, nil
	}

	if completion.IncludeRejectedProducts {
		pool = candidates
	}
	if len(completion.AlternativeProducts) > 0 {
		products := selectByName(completion.AlternativeProducts, pool)
		if len(products) > 0 {
			if len(products) > maxRecommendations {
				products = products[:maxRecommendations]
			}
			state.RecommendedProducts = products
			return &Decision{Kind: DecisionRecommend, Message: completion.Message, Products: products}, nil
		}
	}
	if completion.FinalChoice != "" {
		if chosen := selectByName([]string{completion.FinalChoice}, pool); len(chosen) == 1 {
			state.RecommendedProducts = chosen
			return &Decision{Kind: DecisionRecommend, Message: completion.Message, Products: chosen}, nil
		}
	}
	return &Decision{Kind: DecisionAnswer, Message: completion.Message}, nil
}

// presentAlternatives asks the model to pitch a vetted pool. The returned
// product list is always a subset of pool; an empty reply string signals the
// caller to use its own canned message. Transport failures propagate, an
// unparsable reply degrades to the pool as matched.
func (o *Orchestrator) presentAlternatives(ctx context.Context, state *store.ChatState, message string, pool []store.Product, maxAlternativePrice float64) (string, []store.Product, error) {
	response, err := o.llmProvider.Generate(ctx, o.prompts.Followup(message, state, pool, maxAlternativePrice), llm.WithTemperature(0.7))
	if err != nil {
		return "", nil, fmt.Errorf("alternative completion: %w", err)
	}
	completion, err := require.ParseCompletion(response)
	if err != nil {
		o.logger.Printf("[CHAT] unparsable alternative presentation, using matcher result: %v", err)
		return "", pool, nil
	}

	products := selectByName(completion.AlternativeProducts, pool)
	if len(products) == 0 {
		products = pool
	}
	if len(products) > maxRecommendations {
		products = products[:maxRecommendations]
	}
	return strings.TrimSpace(completion.Message), products, nil
}

// gatheredSet rebuilds a requirement set from the facts accumulated in the
// session, for reruns that must not depend on a fresh extraction call.
func (o *Orchestrator) gatheredSet(state *store.ChatState) *require.Set {
	return &require.Set{
		Category: state.SelectedCategory,
		Purpose:  state.Purpose,
		Features: state.Features,
		Budget:   require.Budget{Min: state.BudgetMin, Max: state.BudgetMax},
		Brand:    state.Brand,
	}
}

// mergeGathered backfills the session facts from a fresh extraction and
// vice versa, so both survive a failure of either source.
func (o *Orchestrator) mergeGathered(state *store.ChatState, reqs *require.Set) {
	if reqs.Purpose == "" {
		reqs.Purpose = state.Purpose
	} else {
		state.Purpose = reqs.Purpose
		state.HasUseCase = true
	}
	if reqs.Budget.IsZero() {
		reqs.Budget = require.Budget{Min: state.BudgetMin, Max: state.BudgetMax}
	} else {
		state.BudgetMin = reqs.Budget.Min
		state.BudgetMax = reqs.Budget.Max
		state.HasBudget = true
	}
	if reqs.Brand == "" {
		reqs.Brand = state.Brand
	} else {
		state.Brand = reqs.Brand
	}
	if len(reqs.Features) == 0 {
		reqs.Features = state.Features
	} else {
		state.Features = reqs.Features
	}
}

func rejectShown(state *store.ChatState) {
	for _, p := range state.RecommendedProducts {
		state.Reject(p.Name)
	}
}

// selectByName resolves model-proposed names against a vetted pool by exact
// name, dropping anything the pool does not contain.
func selectByName(names []string, pool []store.Product) []store.Product {
	if len(names) == 0 {
		return nil
	}
	byName := make(map[string]store.Product, len(pool))
	for _, p := range pool {
		byName[strings.ToLower(p.Name)] = p
	}
	var out []store.Product
	seen := make(map[string]bool)
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if seen[key] {
			continue
		}
		if p, ok := byName[key]; ok {
			out = append(out, p)
			seen[key] = true
		}
	}
	return out
}

// localComparison builds a deterministic comparison table straight from the
// catalog data, used when the model cannot produce a usable one.
func localComparison(products []store.Product) *Comparison {
	c := &Comparison{Features: map[string][]string{}}
	prices := make([]string, 0, len(products))
	brands := make([]string, 0, len(products))
	highlights := make([]string, 0, len(products))
	for _, p := range products {
		c.Products = append(c.Products, p.Name)
		prices = append(prices, p.Price)
		brands = append(brands, p.Brand)
		if len(p.Features) > 0 {
			highlights = append(highlights, p.Features[0])
		} else {
			highlights = append(highlights, "-")
		}
	}
	c.Features["Price"] = prices
	c.Features["Brand"] = brands
	c.Features["Highlight"] = highlights
	return c
}

func limitOrMax(limit float64, products []store.Product) float64 {
	if limit > 0 {
		return limit
	}
	if v, ok := match.MaxPrice(products); ok {
		return v
	}
	return 0
}
