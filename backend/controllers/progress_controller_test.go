package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"no user_id", map[string]interface{}{"data_structure": "stack", "level_id": 1}},
		{"no data_structure", map[string]interface{}{"user_id": 1, "level_id": 1}},
		{"no level_id", map[string]interface{}{"user_id": 1, "data_structure": "stack"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, "POST", "/api/progress", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAttemptsCount(t *testing.T) {
	userID := registerUser(t, "attempter")

	for i := 0; i < 4; i++ {
		submitProgress(t, userID, "stack", 1, false, 0, 0, 0)
	}

	record := fetchRecord(t, userID, "stack", 1)
	assert.Equal(t, float64(4), record["attempts"])

	stats := fetchStats(t, userID)
	assert.Equal(t, float64(4), stats["total_attempts"])
}

func TestBestScoreReconciliation(t *testing.T) {
	userID := registerUser(t, "scorer")

	for _, score := range []int{5, 3, 9, 1} {
		submitProgress(t, userID, "queue", 2, false, score, 0, 0)
	}

	record := fetchRecord(t, userID, "queue", 2)
	assert.Equal(t, float64(9), record["best_score"])
}

func TestBestTimeReconciliation(t *testing.T) {
	userID := registerUser(t, "speedster")

	// 0 значит "время не передано"
	for _, timeTaken := range []int{0, 40, 10, 0} {
		submitProgress(t, userID, "tree", 3, false, 0, timeTaken, 0)
	}

	record := fetchRecord(t, userID, "tree", 3)
	assert.Equal(t, float64(10), record["best_time"])
}

func TestBestMovesReconciliation(t *testing.T) {
	userID := registerUser(t, "mover")

	for _, moves := range []int{12, 7, 0, 20} {
		submitProgress(t, userID, "graph", 4, false, 0, 0, moves)
	}

	record := fetchRecord(t, userID, "graph", 4)
	assert.Equal(t, float64(7), record["best_moves"])
}

func TestCompletedRegression(t *testing.T) {
	userID := registerUser(t, "regressor")

	submitProgress(t, userID, "linkedlist", 5, true, 100, 30, 8)
	statsAfterWin := fetchStats(t, userID)
	require.Equal(t, float64(1), statsAfterWin["levels_completed"])

	// completed перезаписывается как есть: флаг уходит в false,
	// но уже засчитанный levels_completed не откатывается
	submitProgress(t, userID, "linkedlist", 5, false, 50, 20, 4)

	record := fetchRecord(t, userID, "linkedlist", 5)
	assert.Equal(t, false, record["completed"])
	assert.Equal(t, float64(100), record["best_score"])

	stats := fetchStats(t, userID)
	assert.Equal(t, float64(1), stats["levels_completed"])
	assert.Equal(t, float64(2), stats["total_attempts"])
}

func TestCompletedRepeatDoubleCounts(t *testing.T) {
	userID := registerUser(t, "replayer")

	// Каждый завершённый сабмит инкрементит levels_completed,
	// включая повтор того же уровня - поведение исходной системы
	submitProgress(t, userID, "stack", 6, true, 10, 5, 3)
	submitProgress(t, userID, "stack", 6, true, 10, 5, 3)

	stats := fetchStats(t, userID)
	assert.Equal(t, float64(2), stats["levels_completed"])
	assert.Equal(t, float64(20), stats["total_score"])
}

func TestGetProgressEmptyUser(t *testing.T) {
	userID := registerUser(t, "fresh")

	resp := doRequest(t, "GET", "/api/progress/"+itoa(userID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["total_score"])
	assert.Equal(t, float64(0), stats["total_time"])
	assert.Equal(t, float64(0), stats["levels_completed"])
	assert.Equal(t, float64(0), stats["total_attempts"])
	assert.Empty(t, result["data_structure_progress"])
	assert.Empty(t, result["all_progress"])
}

func TestGetProgressUnknownUser(t *testing.T) {
	// Пользователя без строки user_stats не роняем - нулевые значения
	resp := doRequest(t, "GET", "/api/progress/999999", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["total_score"])
	assert.Empty(t, result["all_progress"])
}

func TestDataStructureSummary(t *testing.T) {
	userID := registerUser(t, "summarized")

	submitProgress(t, userID, "stack", 1, true, 10, 5, 2)
	submitProgress(t, userID, "stack", 2, false, 4, 5, 2)
	submitProgress(t, userID, "queue", 1, true, 7, 5, 2)

	resp := doRequest(t, "GET", "/api/progress/"+itoa(userID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	summary := map[string]map[string]interface{}{}
	for _, raw := range result["data_structure_progress"].([]interface{}) {
		row := raw.(map[string]interface{})
		summary[row["data_structure"].(string)] = row
	}

	require.Contains(t, summary, "stack")
	assert.Equal(t, float64(2), summary["stack"]["total_levels"])
	assert.Equal(t, float64(1), summary["stack"]["completed_levels"])
	assert.Equal(t, float64(14), summary["stack"]["total_ds_score"])

	require.Contains(t, summary, "queue")
	assert.Equal(t, float64(1), summary["queue"]["total_levels"])
}

func TestConcurrentSubmissions(t *testing.T) {
	userID := registerUser(t, "racer")

	// Сабмиты из разных горутин не должны терять обновления
	errs := make(chan error, 2)
	for _, score := range []int{5, 9} {
		go func(score int) {
			errs <- trySubmitProgress(userID, "graph", 9, false, score, 0, 0)
		}(score)
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, <-errs)
	}

	record := fetchRecord(t, userID, "graph", 9)
	assert.Equal(t, float64(9), record["best_score"])
	assert.Equal(t, float64(2), record["attempts"])
}
