// Package entity はworksrefフィーチャーのドメインエンティティを定義します。
package entity

// Phase は工事フェーズを表します。
type Phase struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// TableName returns the table name for GORM.
func (Phase) TableName() string {
	return "phases"
}

// Stage は工事ステージを表します。
type Stage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// TableName returns the table name for GORM.
func (Stage) TableName() string {
	return "stages"
}

// Substage は工事サブステージを表します。
type Substage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// TableName returns the table name for GORM.
func (Substage) TableName() string {
	return "substages"
}

// Work は作業参照表の1行を表します。IDはクライアント側で採番される作業コードです。
type Work struct {
	ID         string  `gorm:"primaryKey;size:64" json:"id"`
	Name       string  `gorm:"size:512;not null" json:"name"`
	PhaseID    *uint   `json:"phase_id"`
	StageID    *uint   `json:"stage_id"`
	SubstageID *uint   `json:"substage_id"`
	Unit       string  `gorm:"size:50" json:"unit"`
	UnitPrice  float64 `gorm:"type:decimal(12,2)" json:"unit_price"`
	SortOrder  int     `gorm:"default:0" json:"sort_order"`
}

// TableName returns the table name for GORM.
func (Work) TableName() string {
	return "works_ref"
}

// WorkRow はフェーズ等の名称を結合した一覧表示用の行です。
type WorkRow struct {
	Work
	PhaseName    *string `json:"phase_name"`
	StageName    *string `json:"stage_name"`
	SubstageName *string `json:"substage_name"`
}

// Material は資材マスタの1行を表します。
type Material struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:512;not null" json:"name"`
	Unit      string  `gorm:"size:50" json:"unit"`
	UnitPrice float64 `gorm:"type:decimal(12,2)" json:"unit_price"`
}

// TableName returns the table name for GORM.
func (Material) TableName() string {
	return "materials"
}

// WorkMaterial は作業と資材の対応表です。
type WorkMaterial struct {
	WorkID                 string  `gorm:"primaryKey;size:64" json:"work_id"`
	MaterialID             uint    `gorm:"primaryKey" json:"material_id"`
	ConsumptionPerWorkUnit float64 `gorm:"type:decimal(12,4)" json:"consumption_per_work_unit"`
}

// TableName returns the table name for GORM.
func (WorkMaterial) TableName() string {
	return "work_materials"
}

// MaterialRow は作業ごとの資材一覧表示用の行です。
// quantityには作業単位あたりの消費量が入ります。
type MaterialRow struct {
	Material
	Quantity float64 `json:"quantity"`
}
