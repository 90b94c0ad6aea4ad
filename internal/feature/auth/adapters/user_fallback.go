package adapters

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"admin_backend/internal/feature/auth/domain/entity"
	"admin_backend/internal/feature/auth/usecase"
)

// FallbackUserStore はプライマリ（リレーショナル）ストアをデコレートし、
// インフラ障害時のみインメモリストアへ切り替えます。
// 判定は呼び出しごとに行うため、プライマリが復旧すれば次の呼び出しから
// プライマリに戻ります。その間に2つのストアへ分かれて保存された状態は
// 互いに見えません（既知の制約。照合や再同期は行いません）。
type FallbackUserStore struct {
	// primary はDB起動失敗時にnilになり、その場合は常にメモリ側を使います。
	primary usecase.UserStore
	memory  usecase.UserStore
}

// FallbackUserStoreがUserStoreを実装していることをコンパイル時に検証します。
var _ usecase.UserStore = (*FallbackUserStore)(nil)

// NewFallbackUserStore はフォールバック付きユーザーストアを生成します。
func NewFallbackUserStore(primary, memory usecase.UserStore) *FallbackUserStore {
	return &FallbackUserStore{primary: primary, memory: memory}
}

// isDomainError はストアが正常に応答した上でのビジネス的な失敗かどうかを判定します。
// これらはフォールバックせずそのまま返します。
func isDomainError(err error) bool {
	return errors.Is(err, usecase.ErrUserNotFound) ||
		errors.Is(err, usecase.ErrEmailAlreadyExists)
}

// Create はプライマリへの作成を試み、インフラ障害時はメモリへ作成します。
func (s *FallbackUserStore) Create(ctx context.Context, u *entity.User) error {
	if s.primary != nil {
		err := s.primary.Create(ctx, u)
		if err == nil || isDomainError(err) {
			return err
		}
		slog.Warn("primary user store unavailable, falling back to memory", "op", "create", "error", err)
	}
	return s.memory.Create(ctx, u)
}

// FindByEmail はプライマリでの検索を試み、インフラ障害時はメモリを検索します。
func (s *FallbackUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.primary != nil {
		u, err := s.primary.FindByEmail(ctx, email)
		if err == nil || isDomainError(err) {
			return u, err
		}
		slog.Warn("primary user store unavailable, falling back to memory", "op", "find_by_email", "error", err)
	}
	return s.memory.FindByEmail(ctx, email)
}

// FindByID はプライマリでの検索を試み、インフラ障害時はメモリを検索します。
func (s *FallbackUserStore) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if s.primary != nil {
		u, err := s.primary.FindByID(ctx, id)
		if err == nil || isDomainError(err) {
			return u, err
		}
		slog.Warn("primary user store unavailable, falling back to memory", "op", "find_by_id", "error", err)
	}
	return s.memory.FindByID(ctx, id)
}

// UpdateLastLogin はプライマリでの更新を試み、インフラ障害時はメモリを更新します。
func (s *FallbackUserStore) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if s.primary != nil {
		err := s.primary.UpdateLastLogin(ctx, id, at)
		if err == nil || isDomainError(err) {
			return err
		}
		slog.Warn("primary user store unavailable, falling back to memory", "op", "update_last_login", "error", err)
	}
	return s.memory.UpdateLastLogin(ctx, id, at)
}
