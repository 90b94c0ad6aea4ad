// Package adapters はworksrefフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"admin_backend/internal/feature/worksref/domain/entity"
	"admin_backend/internal/feature/worksref/usecase"
)

// worksGorm はWorksRepositoryインターフェースのリレーショナルDB実装です。
type worksGorm struct {
	db *gorm.DB
}

// worksGormがWorksRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WorksRepository = (*worksGorm)(nil)

// NewWorksGorm は指定されたgorm.DB接続でworksGormを生成します。
func NewWorksGorm(db *gorm.DB) *worksGorm {
	return &worksGorm{db: db}
}

// ListPhases は全フェーズをsort_order、id順で取得します。
func (r *worksGorm) ListPhases(ctx context.Context) ([]entity.Phase, error) {
	var rows []entity.Phase
	if err := r.db.WithContext(ctx).Order("sort_order, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListWorks は作業一覧をフェーズ等の名称付きで取得します。
func (r *worksGorm) ListWorks(ctx context.Context) ([]entity.WorkRow, error) {
	var rows []entity.WorkRow
	err := r.db.WithContext(ctx).
		Table("works_ref w").
		Select("w.*, p.name AS phase_name, s.name AS stage_name, ss.name AS substage_name").
		Joins("LEFT JOIN phases p ON w.phase_id = p.id").
		Joins("LEFT JOIN stages s ON w.stage_id = s.id").
		Joins("LEFT JOIN substages ss ON w.substage_id = ss.id").
		Order("w.sort_order, w.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListWorkMaterials は指定された作業で使う資材を消費量付きで取得します。
func (r *worksGorm) ListWorkMaterials(ctx context.Context, workID string) ([]entity.MaterialRow, error) {
	var rows []entity.MaterialRow
	err := r.db.WithContext(ctx).
		Table("materials m").
		Select("m.*, wm.consumption_per_work_unit AS quantity").
		Joins("JOIN work_materials wm ON m.id = wm.material_id").
		Where("wm.work_id = ?", workID).
		Order("m.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateWork は作業を1件追加します。IDは呼び出し側が指定します。
func (r *worksGorm) CreateWork(ctx context.Context, work *entity.Work) error {
	return r.db.WithContext(ctx).Create(work).Error
}
