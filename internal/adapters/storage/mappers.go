package storage

import (
	"github.com/peekhq/peek/internal/domain"
)

// itemModelToDomain converts an ItemModel (GORM) to domain.PreviewItem.
// Metadata and issues must already be ordered by position.
func itemModelToDomain(m ItemModel) domain.PreviewItem {
	item := domain.PreviewItem{
		ContentRef: m.ContentRef,
		ID:         m.ID,
		Kind:       domain.ItemKind(m.Kind),
		Title:      m.Title,
	}

	if len(m.Metadata) > 0 {
		item.Metadata = make(domain.Metadata, len(m.Metadata))
		for i, md := range m.Metadata {
			item.Metadata[i] = domain.MetadataEntry{Key: md.Key, Value: md.Value}
		}
	}

	if len(m.Issues) > 0 {
		item.Issues = make([]string, len(m.Issues))
		for i, issue := range m.Issues {
			item.Issues[i] = issue.Message
		}
	}

	return item
}

// domainToItemModel converts a domain.PreviewItem to ItemModel (GORM)
func domainToItemModel(item domain.PreviewItem, position int) ItemModel {
	m := ItemModel{
		ContentRef: item.ContentRef,
		ID:         item.ID,
		Kind:       string(item.Kind),
		Position:   position,
		Title:      item.Title,
	}

	for i, entry := range item.Metadata {
		m.Metadata = append(m.Metadata, ItemMetadataModel{
			ItemID:   item.ID,
			Key:      entry.Key,
			Position: i,
			Value:    entry.Value,
		})
	}

	for i, message := range item.Issues {
		m.Issues = append(m.Issues, ItemIssueModel{
			ItemID:   item.ID,
			Message:  message,
			Position: i,
		})
	}

	return m
}
