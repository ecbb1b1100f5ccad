package storage

import "time"

// ItemModel is the GORM model for the items table
type ItemModel struct {
	ContentRef string              `gorm:"not null;default:''"`
	CreatedAt  time.Time
	ID         string              `gorm:"primaryKey"`
	Issues     []ItemIssueModel    `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Kind       string              `gorm:"not null;check:kind IN ('image','pdf','document')"`
	Metadata   []ItemMetadataModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Position   int                 `gorm:"not null;uniqueIndex:idx_item_position"`
	Title      string              `gorm:"not null;default:''"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string { return "items" }

// ItemMetadataModel is one ordered metadata entry of an item
type ItemMetadataModel struct {
	ID       uint   `gorm:"primaryKey"`
	ItemID   string `gorm:"not null;index:idx_metadata_item"`
	Key      string `gorm:"not null"`
	Position int    `gorm:"not null;default:0"`
	Value    string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (ItemMetadataModel) TableName() string { return "item_metadata" }

// ItemIssueModel is one ordered issue message of an item
type ItemIssueModel struct {
	ID       uint   `gorm:"primaryKey"`
	ItemID   string `gorm:"not null;index:idx_issue_item"`
	Message  string `gorm:"not null"`
	Position int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ItemIssueModel) TableName() string { return "item_issues" }
