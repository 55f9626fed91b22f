package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateAirdropPoolParams represents parameters for creating an airdrop pool
// with its task list.
type CreateAirdropPoolParams struct {
	CampaignID  uuid.UUID
	RewardMode  RewardMode
	TotalBudget int64
	ExpiresAt   *time.Time
	Tasks       []CreateAirdropTaskParams
}

// CreateAirdropTaskParams is one task definition of a new pool.
type CreateAirdropTaskParams struct {
	TaskType         string
	RewardAmount     int64
	VerificationHint string
	MaxCompletions   int
}

const sqlCreateAirdropPool = `
INSERT INTO airdrop_pools (campaign_id, reward_mode, total_budget, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING id, campaign_id, reward_mode, total_budget, total_distributed, is_active, expires_at, created_at
`

const sqlCreateAirdropTask = `
INSERT INTO airdrop_tasks (pool_id, position, task_type, reward_amount, verification_hint, max_completions)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, pool_id, position, task_type, reward_amount, verification_hint, max_completions, completion_count, is_active
`

// CreateAirdropPool creates a pool and its tasks in one transaction. A
// campaign carries at most one pool, enforced by a unique index on
// campaign_id.
func (s *Store) CreateAirdropPool(ctx context.Context, params CreateAirdropPoolParams) (AirdropPool, error) {
	var pool AirdropPool
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &pool, sqlCreateAirdropPool,
			params.CampaignID, params.RewardMode, params.TotalBudget, params.ExpiresAt); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create airdrop pool: %w", err)
		}

		pool.Tasks = make([]AirdropTask, 0, len(params.Tasks))
		for i, task := range params.Tasks {
			var created AirdropTask
			if err := tx.GetContext(ctx, &created, sqlCreateAirdropTask,
				pool.ID, i, task.TaskType, task.RewardAmount, task.VerificationHint, task.MaxCompletions); err != nil {
				return fmt.Errorf("failed to create airdrop task %d: %w", i, err)
			}
			pool.Tasks = append(pool.Tasks, created)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyExists) {
			s.logger.Error(ctx, "failed to create airdrop pool", err)
		}
		return AirdropPool{}, err
	}
	return pool, nil
}

const sqlGetAirdropPoolByCampaign = `
SELECT id, campaign_id, reward_mode, total_budget, total_distributed, is_active, expires_at, created_at
FROM airdrop_pools
WHERE campaign_id = $1
`

const sqlGetAirdropTasksByPool = `
SELECT id, pool_id, position, task_type, reward_amount, verification_hint, max_completions, completion_count, is_active
FROM airdrop_tasks
WHERE pool_id = $1
ORDER BY position
`

// GetAirdropPoolByCampaignID retrieves a campaign's pool with its tasks.
func (s *Store) GetAirdropPoolByCampaignID(ctx context.Context, campaignID uuid.UUID) (AirdropPool, error) {
	var pool AirdropPool
	err := s.db.GetContext(ctx, &pool, sqlGetAirdropPoolByCampaign, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AirdropPool{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get airdrop pool", err)
		return AirdropPool{}, fmt.Errorf("failed to get airdrop pool: %w", err)
	}

	if err := s.db.SelectContext(ctx, &pool.Tasks, sqlGetAirdropTasksByPool, pool.ID); err != nil {
		s.logger.Error(ctx, "failed to load airdrop tasks", err)
		return AirdropPool{}, fmt.Errorf("failed to load airdrop tasks: %w", err)
	}
	return pool, nil
}

const sqlCreateTaskCompletion = `
INSERT INTO task_completions (campaign_id, wallet, task_index, status, proof)
VALUES ($1, $2, $3, 'pending', $4)
RETURNING id, campaign_id, wallet, task_index, status, proof, rejection_reason, submitted_at, finalized_at
`

// CreateTaskCompletion records a pending submission. A duplicate
// (campaign, wallet, task index) submission maps to ErrAlreadyExists.
func (s *Store) CreateTaskCompletion(ctx context.Context, campaignID uuid.UUID, wallet string, taskIndex int, proof string) (TaskCompletion, error) {
	var completion TaskCompletion
	err := s.db.GetContext(ctx, &completion, sqlCreateTaskCompletion, campaignID, wallet, taskIndex, proof)
	if err != nil {
		if isUniqueViolation(err) {
			return TaskCompletion{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create task completion", err)
		return TaskCompletion{}, fmt.Errorf("failed to create task completion: %w", err)
	}
	return completion, nil
}

const sqlGetTaskCompletion = `
SELECT id, campaign_id, wallet, task_index, status, proof, rejection_reason, submitted_at, finalized_at
FROM task_completions
WHERE campaign_id = $1 AND wallet = $2 AND task_index = $3
`

// GetTaskCompletion fetches one submission by its natural key.
func (s *Store) GetTaskCompletion(ctx context.Context, campaignID uuid.UUID, wallet string, taskIndex int) (TaskCompletion, error) {
	var completion TaskCompletion
	err := s.db.GetContext(ctx, &completion, sqlGetTaskCompletion, campaignID, wallet, taskIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TaskCompletion{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get task completion", err)
		return TaskCompletion{}, fmt.Errorf("failed to get task completion: %w", err)
	}
	return completion, nil
}

const sqlListTaskCompletions = `
SELECT id, campaign_id, wallet, task_index, status, proof, rejection_reason, submitted_at, finalized_at
FROM task_completions
WHERE campaign_id = $1
ORDER BY submitted_at DESC
`

// ListTaskCompletions returns all submissions for a campaign, newest first.
func (s *Store) ListTaskCompletions(ctx context.Context, campaignID uuid.UUID) ([]TaskCompletion, error) {
	completions := []TaskCompletion{}
	if err := s.db.SelectContext(ctx, &completions, sqlListTaskCompletions, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list task completions", err)
		return nil, fmt.Errorf("failed to list task completions: %w", err)
	}
	return completions, nil
}

// ApproveTaskCompletionParams carries the effects of approving one
// submission.
type ApproveTaskCompletionParams struct {
	CompletionID uuid.UUID
	TaskID       uuid.UUID
	PoolID       uuid.UUID
	RewardAmount int64
}

const sqlApproveCompletion = `
UPDATE task_completions
SET status = 'approved', finalized_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING id, campaign_id, wallet, task_index, status, proof, rejection_reason, submitted_at, finalized_at
`

const sqlIncrementTaskCompletions = `
UPDATE airdrop_tasks
SET completion_count = completion_count + 1
WHERE id = $1 AND completion_count < max_completions
`

const sqlDistributeFromBudget = `
UPDATE airdrop_pools
SET total_distributed = total_distributed + $2
WHERE id = $1 AND total_distributed + $2 <= total_budget
`

// ApproveTaskCompletion finalizes a pending submission and moves the task
// and budget counters in one transaction. The counter guards return
// ErrStaleState when a concurrent approval exhausted the task or budget.
func (s *Store) ApproveTaskCompletion(ctx context.Context, params ApproveTaskCompletionParams) (TaskCompletion, error) {
	var completion TaskCompletion
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &completion, sqlApproveCompletion, params.CompletionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrStaleState
			}
			return fmt.Errorf("failed to approve completion: %w", err)
		}

		if err := s.guardedExec(ctx, tx, sqlIncrementTaskCompletions, params.TaskID); err != nil {
			return fmt.Errorf("failed to increment task completions: %w", err)
		}
		if err := s.guardedExec(ctx, tx, sqlDistributeFromBudget, params.PoolID, params.RewardAmount); err != nil {
			return fmt.Errorf("failed to distribute from budget: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrStaleState) {
			s.logger.Error(ctx, "failed to approve task completion", err)
		}
		return TaskCompletion{}, err
	}
	return completion, nil
}

const sqlRejectCompletion = `
UPDATE task_completions
SET status = 'rejected', rejection_reason = $2, finalized_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING id, campaign_id, wallet, task_index, status, proof, rejection_reason, submitted_at, finalized_at
`

// RejectTaskCompletion finalizes a pending submission as rejected with a
// reason. An already finalized record maps to ErrStaleState.
func (s *Store) RejectTaskCompletion(ctx context.Context, completionID uuid.UUID, reason string) (TaskCompletion, error) {
	var completion TaskCompletion
	err := s.db.GetContext(ctx, &completion, sqlRejectCompletion, completionID, reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TaskCompletion{}, ErrStaleState
		}
		s.logger.Error(ctx, "failed to reject task completion", err)
		return TaskCompletion{}, fmt.Errorf("failed to reject task completion: %w", err)
	}
	return completion, nil
}

// guardedExec runs a guarded single-row update and converts a zero-row
// result into ErrStaleState.
func (s *Store) guardedExec(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStaleState
	}
	return nil
}
