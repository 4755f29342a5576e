package models_test

import (
	"testing"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelCatalogTopics(t *testing.T) {
	catalog := models.DefaultLevelCatalog()

	topics := []string{"stack", "queue", "linkedlist", "tree", "graph"}
	require.Len(t, catalog, len(topics))

	for _, topic := range topics {
		levels := catalog.Levels(topic)
		require.Len(t, levels, 30, "topic %s", topic)

		// id идут 1..30 по возрастанию
		for i, level := range levels {
			assert.Equal(t, i+1, level.ID)
		}

		// Полосы сложности: 1-10 Easy, 11-20 Medium, 21-30 Hard
		assert.Equal(t, "Easy", levels[0].Difficulty)
		assert.Equal(t, "Medium", levels[10].Difficulty)
		assert.Equal(t, "Hard", levels[20].Difficulty)
	}
}

func TestLevelsUnknownTopic(t *testing.T) {
	catalog := models.DefaultLevelCatalog()

	levels := catalog.Levels("heap")
	assert.NotNil(t, levels)
	assert.Empty(t, levels)
}
