package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/locking"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// AirdropStore defines the database operations required by AirdropProcessor
type AirdropStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	CreateAirdropPool(ctx context.Context, params store.CreateAirdropPoolParams) (store.AirdropPool, error)
	GetAirdropPoolByCampaignID(ctx context.Context, campaignID uuid.UUID) (store.AirdropPool, error)
	CreateTaskCompletion(ctx context.Context, campaignID uuid.UUID, wallet string, taskIndex int, proof string) (store.TaskCompletion, error)
	GetTaskCompletion(ctx context.Context, campaignID uuid.UUID, wallet string, taskIndex int) (store.TaskCompletion, error)
	ListTaskCompletions(ctx context.Context, campaignID uuid.UUID) ([]store.TaskCompletion, error)
	ApproveTaskCompletion(ctx context.Context, params store.ApproveTaskCompletionParams) (store.TaskCompletion, error)
	RejectTaskCompletion(ctx context.Context, completionID uuid.UUID, reason string) (store.TaskCompletion, error)
}

// RewardMinter issues reward tokens against the campaign's mint.
type RewardMinter interface {
	Mint(ctx context.Context, mint, wallet string, amount int64) error
}

// Notifier delivers reward notifications. Failures are logged, never
// surfaced.
type Notifier interface {
	RewardApproved(ctx context.Context, campaign store.Campaign, taskType string, rewardAmount int64) error
}

var (
	ErrPoolNotFound       = errors.New("airdrop pool not found")
	ErrPoolExists         = errors.New("campaign already has an airdrop pool")
	ErrTaskNotFound       = errors.New("task not found or not active")
	ErrAlreadySubmitted   = errors.New("task completion already submitted")
	ErrAlreadyFinalized   = errors.New("task completion already finalized")
	ErrBudgetExceeded     = errors.New("reward exceeds pool budget or task limit")
	ErrCompletionNotFound = errors.New("task completion not found")
	ErrUnauthorized       = errors.New("unauthorized access to airdrop pool")
	ErrInvalidPoolParams  = errors.New("invalid airdrop pool parameters")
	ErrMintFailed         = errors.New("reward mint service failed")
)

type AirdropProcessor struct {
	store    AirdropStore
	minter   RewardMinter
	notifier Notifier
	locks    *locking.KeyedMutex
	logger   *observability.Logger
}

func New(store AirdropStore, minter RewardMinter, notifier Notifier, logger *observability.Logger) AirdropProcessor {
	return AirdropProcessor{
		store:    store,
		minter:   minter,
		notifier: notifier,
		locks:    locking.NewKeyedMutex(),
		logger:   logger,
	}
}

// TaskParams is one task definition of a new pool.
type TaskParams struct {
	TaskType         string
	RewardAmount     int64
	VerificationHint string
	MaxCompletions   int
}

// CreatePoolParams represents parameters for creating an airdrop pool
type CreatePoolParams struct {
	CampaignID  uuid.UUID
	RewardMode  store.RewardMode
	TotalBudget int64
	ExpiresAt   *time.Time
	Tasks       []TaskParams
}

func (params CreatePoolParams) validate() error {
	if !params.RewardMode.Valid() {
		return fmt.Errorf("%w: unknown reward mode %q", ErrInvalidPoolParams, params.RewardMode)
	}
	if params.TotalBudget <= 0 {
		return fmt.Errorf("%w: total budget must be positive", ErrInvalidPoolParams)
	}
	if params.ExpiresAt != nil && !params.ExpiresAt.After(time.Now()) {
		return fmt.Errorf("%w: expiry must be in the future", ErrInvalidPoolParams)
	}
	if len(params.Tasks) == 0 {
		return fmt.Errorf("%w: at least one task is required", ErrInvalidPoolParams)
	}
	for i, task := range params.Tasks {
		if task.TaskType == "" {
			return fmt.Errorf("%w: task %d has no type", ErrInvalidPoolParams, i)
		}
		if task.RewardAmount <= 0 {
			return fmt.Errorf("%w: task %d reward must be positive", ErrInvalidPoolParams, i)
		}
		if task.MaxCompletions <= 0 {
			return fmt.Errorf("%w: task %d max completions must be positive", ErrInvalidPoolParams, i)
		}
	}
	return nil
}

// CreateAirdropPool attaches a budgeted reward pool to a campaign. Only the
// campaign creator may create one and a campaign carries at most one pool.
func (p *AirdropProcessor) CreateAirdropPool(ctx context.Context, caller string, params CreatePoolParams) (store.AirdropPool, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID},
		observability.Field{Key: "caller", Value: caller},
	)

	if err := params.validate(); err != nil {
		return store.AirdropPool{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, params.CampaignID)
	if err != nil {
		return store.AirdropPool{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Creator != caller {
		return store.AirdropPool{}, ErrUnauthorized
	}

	storeParams := store.CreateAirdropPoolParams{
		CampaignID:  params.CampaignID,
		RewardMode:  params.RewardMode,
		TotalBudget: params.TotalBudget,
		ExpiresAt:   params.ExpiresAt,
	}
	for _, task := range params.Tasks {
		storeParams.Tasks = append(storeParams.Tasks, store.CreateAirdropTaskParams{
			TaskType:         task.TaskType,
			RewardAmount:     task.RewardAmount,
			VerificationHint: task.VerificationHint,
			MaxCompletions:   task.MaxCompletions,
		})
	}

	pool, err := p.store.CreateAirdropPool(ctx, storeParams)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.AirdropPool{}, ErrPoolExists
		}
		p.logger.Error(ctx, "failed to create airdrop pool", err)
		return store.AirdropPool{}, fmt.Errorf("failed to create airdrop pool: %w", err)
	}

	p.logger.Info(ctx, "airdrop pool created")
	return pool, nil
}

// GetPool fetches a campaign's airdrop pool with its tasks.
func (p *AirdropProcessor) GetPool(ctx context.Context, campaignID uuid.UUID) (store.AirdropPool, error) {
	pool, err := p.store.GetAirdropPoolByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AirdropPool{}, ErrPoolNotFound
		}
		return store.AirdropPool{}, fmt.Errorf("failed to get airdrop pool: %w", err)
	}
	return pool, nil
}

// SubmitTaskCompletion records a wallet's pending claim against one task.
// At most one record exists per (wallet, task index); duplicates are
// rejected, never overwritten.
func (p *AirdropProcessor) SubmitTaskCompletion(ctx context.Context, campaignID uuid.UUID, wallet string, taskIndex int, proof string) (store.TaskCompletion, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "wallet", Value: wallet},
		observability.Field{Key: "task_index", Value: taskIndex},
	)

	pool, err := p.store.GetAirdropPoolByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TaskCompletion{}, ErrPoolNotFound
		}
		return store.TaskCompletion{}, fmt.Errorf("failed to get airdrop pool: %w", err)
	}
	if task, err := activeTask(pool, taskIndex, time.Now()); err != nil {
		return store.TaskCompletion{}, err
	} else if !task.IsActive {
		return store.TaskCompletion{}, ErrTaskNotFound
	}

	completion, err := p.store.CreateTaskCompletion(ctx, campaignID, wallet, taskIndex, proof)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.TaskCompletion{}, ErrAlreadySubmitted
		}
		p.logger.Error(ctx, "failed to create task completion", err)
		return store.TaskCompletion{}, fmt.Errorf("failed to create task completion: %w", err)
	}

	p.logger.Info(ctx, "task completion submitted")
	return completion, nil
}

// ApproveTaskCompletion finalizes a pending claim: the task's reward is
// minted to the claimant and the task and budget counters advance. A reward
// that would break the budget or the task cap is rejected before any tokens
// move.
func (p *AirdropProcessor) ApproveTaskCompletion(ctx context.Context, campaignID uuid.UUID, caller, wallet string, taskIndex int) (store.TaskCompletion, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "wallet", Value: wallet},
		observability.Field{Key: "task_index", Value: taskIndex},
	)

	p.locks.Lock(campaignID)
	defer p.locks.Unlock(campaignID)

	campaign, pool, completion, err := p.reviewContext(ctx, campaignID, caller, wallet, taskIndex)
	if err != nil {
		return store.TaskCompletion{}, err
	}

	if taskIndex < 0 || taskIndex >= len(pool.Tasks) {
		return store.TaskCompletion{}, ErrTaskNotFound
	}
	task := pool.Tasks[taskIndex]
	if task.CompletionCount >= task.MaxCompletions {
		return store.TaskCompletion{}, ErrBudgetExceeded
	}
	if pool.TotalDistributed+task.RewardAmount > pool.TotalBudget {
		return store.TaskCompletion{}, ErrBudgetExceeded
	}

	if err := p.minter.Mint(ctx, campaign.TokenMint, wallet, task.RewardAmount); err != nil {
		p.logger.Error(ctx, "failed to mint reward tokens", err)
		return store.TaskCompletion{}, fmt.Errorf("%w: %s", ErrMintFailed, err.Error())
	}

	approved, err := p.store.ApproveTaskCompletion(ctx, store.ApproveTaskCompletionParams{
		CompletionID: completion.ID,
		TaskID:       task.ID,
		PoolID:       pool.ID,
		RewardAmount: task.RewardAmount,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist approval", err)
		return store.TaskCompletion{}, fmt.Errorf("failed to persist approval: %w", err)
	}

	if err := p.notifier.RewardApproved(ctx, campaign, task.TaskType, task.RewardAmount); err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("failed to send reward notification: %v", err))
	}

	p.logger.Info(ctx, "task completion approved")
	return approved, nil
}

// RejectTaskCompletion finalizes a pending claim as rejected with a reason.
func (p *AirdropProcessor) RejectTaskCompletion(ctx context.Context, campaignID uuid.UUID, caller, wallet string, taskIndex int, reason string) (store.TaskCompletion, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "wallet", Value: wallet},
		observability.Field{Key: "task_index", Value: taskIndex},
	)

	p.locks.Lock(campaignID)
	defer p.locks.Unlock(campaignID)

	_, _, completion, err := p.reviewContext(ctx, campaignID, caller, wallet, taskIndex)
	if err != nil {
		return store.TaskCompletion{}, err
	}

	rejected, err := p.store.RejectTaskCompletion(ctx, completion.ID, reason)
	if err != nil {
		if errors.Is(err, store.ErrStaleState) {
			return store.TaskCompletion{}, ErrAlreadyFinalized
		}
		p.logger.Error(ctx, "failed to persist rejection", err)
		return store.TaskCompletion{}, fmt.Errorf("failed to persist rejection: %w", err)
	}

	p.logger.Info(ctx, "task completion rejected")
	return rejected, nil
}

// ListTaskCompletions returns the review queue for a campaign, creator-only.
func (p *AirdropProcessor) ListTaskCompletions(ctx context.Context, campaignID uuid.UUID, caller string) ([]store.TaskCompletion, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Creator != caller {
		return nil, ErrUnauthorized
	}

	completions, err := p.store.ListTaskCompletions(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task completions: %w", err)
	}
	return completions, nil
}

// reviewContext loads and authorizes the state shared by approve and
// reject: the campaign (creator check), the pool, and a still-pending
// completion.
func (p *AirdropProcessor) reviewContext(ctx context.Context, campaignID uuid.UUID, caller, wallet string, taskIndex int) (store.Campaign, store.AirdropPool, store.TaskCompletion, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Creator != caller {
		return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, ErrUnauthorized
	}

	pool, err := p.store.GetAirdropPoolByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, ErrPoolNotFound
		}
		return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, fmt.Errorf("failed to get airdrop pool: %w", err)
	}

	completion, err := p.store.GetTaskCompletion(ctx, campaignID, wallet, taskIndex)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, ErrCompletionNotFound
		}
		return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, fmt.Errorf("failed to get task completion: %w", err)
	}
	if completion.Status != store.CompletionPending {
		return store.Campaign{}, store.AirdropPool{}, store.TaskCompletion{}, ErrAlreadyFinalized
	}
	return campaign, pool, completion, nil
}

// activeTask resolves taskIndex against an open pool. A closed or expired
// pool hides its tasks.
func activeTask(pool store.AirdropPool, taskIndex int, now time.Time) (store.AirdropTask, error) {
	if !pool.IsActive {
		return store.AirdropTask{}, ErrTaskNotFound
	}
	if pool.ExpiresAt != nil && now.After(*pool.ExpiresAt) {
		return store.AirdropTask{}, ErrTaskNotFound
	}
	if taskIndex < 0 || taskIndex >= len(pool.Tasks) {
		return store.AirdropTask{}, ErrTaskNotFound
	}
	return pool.Tasks[taskIndex], nil
}
