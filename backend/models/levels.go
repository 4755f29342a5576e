package models

// LevelDefinition описывает один уровень из статического каталога.
// Каталог не персистится и не зависит от пользователя.
type LevelDefinition struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"` // Easy, Medium, Hard
}

// LevelCatalog - неизменяемый справочник тема -> упорядоченный список уровней.
// Собирается один раз при старте и передаётся в контроллер уровней,
// а не читается из глобального состояния.
type LevelCatalog map[string][]LevelDefinition

// Levels возвращает уровни темы в исходном порядке.
// Неизвестная тема - пустой список, не ошибка.
func (lc LevelCatalog) Levels(topic string) []LevelDefinition {
	if levels, ok := lc[topic]; ok {
		return levels
	}
	return []LevelDefinition{}
}

// DefaultLevelCatalog строит полный каталог игры:
// пять тем по 30 уровней, id 1..30 по возрастанию сложности.
func DefaultLevelCatalog() LevelCatalog {
	return LevelCatalog{
		"stack": {
			{ID: 1, Name: "Basic Push", Difficulty: "Easy"},
			{ID: 2, Name: "Simple Pop", Difficulty: "Easy"},
			{ID: 3, Name: "Push Multiple", Difficulty: "Easy"},
			{ID: 4, Name: "Pop to Empty", Difficulty: "Easy"},
			{ID: 5, Name: "Push and Pop", Difficulty: "Easy"},
			{ID: 6, Name: "Single Element", Difficulty: "Easy"},
			{ID: 7, Name: "Clear Stack", Difficulty: "Easy"},
			{ID: 8, Name: "Build Stack", Difficulty: "Easy"},
			{ID: 9, Name: "Remove Top", Difficulty: "Easy"},
			{ID: 10, Name: "Add One", Difficulty: "Easy"},
			{ID: 11, Name: "Reverse Two", Difficulty: "Medium"},
			{ID: 12, Name: "Stack Swap", Difficulty: "Medium"},
			{ID: 13, Name: "Insert Middle", Difficulty: "Medium"},
			{ID: 14, Name: "Duplicate Top", Difficulty: "Medium"},
			{ID: 15, Name: "Move Bottom", Difficulty: "Medium"},
			{ID: 16, Name: "Stack Rotation", Difficulty: "Medium"},
			{ID: 17, Name: "Replace Top", Difficulty: "Medium"},
			{ID: 18, Name: "Sort Two", Difficulty: "Medium"},
			{ID: 19, Name: "Triple Reverse", Difficulty: "Medium"},
			{ID: 20, Name: "Insert Between", Difficulty: "Medium"},
			{ID: 21, Name: "Perfect Shuffle", Difficulty: "Hard"},
			{ID: 22, Name: "Stack Tower", Difficulty: "Hard"},
			{ID: 23, Name: "Complex Reverse", Difficulty: "Hard"},
			{ID: 24, Name: "Palindrome", Difficulty: "Hard"},
			{ID: 25, Name: "Stack Permutation", Difficulty: "Hard"},
			{ID: 26, Name: "Mirror Image", Difficulty: "Hard"},
			{ID: 27, Name: "Stack Merge", Difficulty: "Hard"},
			{ID: 28, Name: "Fibonacci Stack", Difficulty: "Hard"},
			{ID: 29, Name: "Tower of Hanoi", Difficulty: "Hard"},
			{ID: 30, Name: "Master Stack", Difficulty: "Hard"},
		},
		"queue": {
			{ID: 1, Name: "Basic Enqueue", Difficulty: "Easy"},
			{ID: 2, Name: "Simple Dequeue", Difficulty: "Easy"},
			{ID: 3, Name: "Queue Build", Difficulty: "Easy"},
			{ID: 4, Name: "Empty Queue", Difficulty: "Easy"},
			{ID: 5, Name: "Queue Replace", Difficulty: "Easy"},
			{ID: 6, Name: "Single Item", Difficulty: "Easy"},
			{ID: 7, Name: "Clear Queue", Difficulty: "Easy"},
			{ID: 8, Name: "Build Three", Difficulty: "Easy"},
			{ID: 9, Name: "Remove Front", Difficulty: "Easy"},
			{ID: 10, Name: "Add Back", Difficulty: "Easy"},
			{ID: 11, Name: "Queue Rotation", Difficulty: "Medium"},
			{ID: 12, Name: "Move Front", Difficulty: "Medium"},
			{ID: 13, Name: "Insert Middle", Difficulty: "Medium"},
			{ID: 14, Name: "Queue Duplicate", Difficulty: "Medium"},
			{ID: 15, Name: "Rearrange Queue", Difficulty: "Medium"},
			{ID: 16, Name: "Queue Circle", Difficulty: "Medium"},
			{ID: 17, Name: "Replace Front", Difficulty: "Medium"},
			{ID: 18, Name: "Queue Sort", Difficulty: "Medium"},
			{ID: 19, Name: "Triple Rotate", Difficulty: "Medium"},
			{ID: 20, Name: "Queue Insert", Difficulty: "Medium"},
			{ID: 21, Name: "Queue Reversal", Difficulty: "Hard"},
			{ID: 22, Name: "Queue Tower", Difficulty: "Hard"},
			{ID: 23, Name: "Complex Queue", Difficulty: "Hard"},
			{ID: 24, Name: "Queue Palindrome", Difficulty: "Hard"},
			{ID: 25, Name: "Queue Shuffle", Difficulty: "Hard"},
			{ID: 26, Name: "Queue Mirror", Difficulty: "Hard"},
			{ID: 27, Name: "Queue Merge", Difficulty: "Hard"},
			{ID: 28, Name: "Queue Pattern", Difficulty: "Hard"},
			{ID: 29, Name: "Queue Permutation", Difficulty: "Hard"},
			{ID: 30, Name: "Master Queue", Difficulty: "Hard"},
		},
		"linkedlist": {
			{ID: 1, Name: "Basic Insert", Difficulty: "Easy"},
			{ID: 2, Name: "Simple Delete", Difficulty: "Easy"},
			{ID: 3, Name: "Build List", Difficulty: "Easy"},
			{ID: 4, Name: "Empty List", Difficulty: "Easy"},
			{ID: 5, Name: "Replace Element", Difficulty: "Easy"},
			{ID: 6, Name: "Single Node", Difficulty: "Easy"},
			{ID: 7, Name: "Clear List", Difficulty: "Easy"},
			{ID: 8, Name: "Build Three", Difficulty: "Easy"},
			{ID: 9, Name: "Remove Last", Difficulty: "Easy"},
			{ID: 10, Name: "Add End", Difficulty: "Easy"},
			{ID: 11, Name: "Insert Middle", Difficulty: "Medium"},
			{ID: 12, Name: "Delete Middle", Difficulty: "Medium"},
			{ID: 13, Name: "List Swap", Difficulty: "Medium"},
			{ID: 14, Name: "Insert Start", Difficulty: "Medium"},
			{ID: 15, Name: "Delete Start", Difficulty: "Medium"},
			{ID: 16, Name: "List Reverse", Difficulty: "Medium"},
			{ID: 17, Name: "Insert Position", Difficulty: "Medium"},
			{ID: 18, Name: "Delete Position", Difficulty: "Medium"},
			{ID: 19, Name: "List Rotation", Difficulty: "Medium"},
			{ID: 20, Name: "Complex Insert", Difficulty: "Medium"},
			{ID: 21, Name: "List Permutation", Difficulty: "Hard"},
			{ID: 22, Name: "List Tower", Difficulty: "Hard"},
			{ID: 23, Name: "Complex List", Difficulty: "Hard"},
			{ID: 24, Name: "List Palindrome", Difficulty: "Hard"},
			{ID: 25, Name: "List Shuffle", Difficulty: "Hard"},
			{ID: 26, Name: "List Mirror", Difficulty: "Hard"},
			{ID: 27, Name: "List Merge", Difficulty: "Hard"},
			{ID: 28, Name: "List Pattern", Difficulty: "Hard"},
			{ID: 29, Name: "List Sort", Difficulty: "Hard"},
			{ID: 30, Name: "Master List", Difficulty: "Hard"},
		},
		"tree": {
			{ID: 1, Name: "Basic Insert", Difficulty: "Easy"},
			{ID: 2, Name: "Simple Search", Difficulty: "Easy"},
			{ID: 3, Name: "Build BST", Difficulty: "Easy"},
			{ID: 4, Name: "Find Element", Difficulty: "Easy"},
			{ID: 5, Name: "Insert Left", Difficulty: "Easy"},
			{ID: 6, Name: "Insert Right", Difficulty: "Easy"},
			{ID: 7, Name: "Single Node", Difficulty: "Easy"},
			{ID: 8, Name: "Build Three", Difficulty: "Easy"},
			{ID: 9, Name: "Search Found", Difficulty: "Easy"},
			{ID: 10, Name: "Insert Multiple", Difficulty: "Easy"},
			{ID: 11, Name: "Balanced Tree", Difficulty: "Medium"},
			{ID: 12, Name: "Search Multiple", Difficulty: "Medium"},
			{ID: 13, Name: "Insert Complex", Difficulty: "Medium"},
			{ID: 14, Name: "Tree Traversal", Difficulty: "Medium"},
			{ID: 15, Name: "Build Complete", Difficulty: "Medium"},
			{ID: 16, Name: "Search Path", Difficulty: "Medium"},
			{ID: 17, Name: "Insert Deep", Difficulty: "Medium"},
			{ID: 18, Name: "Tree Height", Difficulty: "Medium"},
			{ID: 19, Name: "Search All", Difficulty: "Medium"},
			{ID: 20, Name: "Insert Skewed", Difficulty: "Medium"},
			{ID: 21, Name: "Complex BST", Difficulty: "Hard"},
			{ID: 22, Name: "Tree Search", Difficulty: "Hard"},
			{ID: 23, Name: "Perfect Tree", Difficulty: "Hard"},
			{ID: 24, Name: "Tree Patterns", Difficulty: "Hard"},
			{ID: 25, Name: "Search Challenge", Difficulty: "Hard"},
			{ID: 26, Name: "Tree Mirror", Difficulty: "Hard"},
			{ID: 27, Name: "Deep Search", Difficulty: "Hard"},
			{ID: 28, Name: "Fibonacci Tree", Difficulty: "Hard"},
			{ID: 29, Name: "Tree Balance", Difficulty: "Hard"},
			{ID: 30, Name: "Master Tree", Difficulty: "Hard"},
		},
		"graph": {
			{ID: 1, Name: "Basic Vertex", Difficulty: "Easy"},
			{ID: 2, Name: "Simple Remove", Difficulty: "Easy"},
			{ID: 3, Name: "Build Graph", Difficulty: "Easy"},
			{ID: 4, Name: "Empty Graph", Difficulty: "Easy"},
			{ID: 5, Name: "Replace Vertex", Difficulty: "Easy"},
			{ID: 6, Name: "Single Node", Difficulty: "Easy"},
			{ID: 7, Name: "Clear Graph", Difficulty: "Easy"},
			{ID: 8, Name: "Build Three", Difficulty: "Easy"},
			{ID: 9, Name: "Remove One", Difficulty: "Easy"},
			{ID: 10, Name: "Add Vertex", Difficulty: "Easy"},
			{ID: 11, Name: "Graph Build", Difficulty: "Medium"},
			{ID: 12, Name: "Graph Remove", Difficulty: "Medium"},
			{ID: 13, Name: "Graph Swap", Difficulty: "Medium"},
			{ID: 14, Name: "Graph Replace", Difficulty: "Medium"},
			{ID: 15, Name: "Graph Expand", Difficulty: "Medium"},
			{ID: 16, Name: "Graph Contract", Difficulty: "Medium"},
			{ID: 17, Name: "Graph Mix", Difficulty: "Medium"},
			{ID: 18, Name: "Graph Transform", Difficulty: "Medium"},
			{ID: 19, Name: "Graph Cycle", Difficulty: "Medium"},
			{ID: 20, Name: "Graph Path", Difficulty: "Medium"},
			{ID: 21, Name: "Complex Graph", Difficulty: "Hard"},
			{ID: 22, Name: "Graph Tower", Difficulty: "Hard"},
			{ID: 23, Name: "Graph Network", Difficulty: "Hard"},
			{ID: 24, Name: "Graph Complete", Difficulty: "Hard"},
			{ID: 25, Name: "Graph Sparse", Difficulty: "Hard"},
			{ID: 26, Name: "Graph Dense", Difficulty: "Hard"},
			{ID: 27, Name: "Graph Merge", Difficulty: "Hard"},
			{ID: 28, Name: "Graph Pattern", Difficulty: "Hard"},
			{ID: 29, Name: "Graph Web", Difficulty: "Hard"},
			{ID: 30, Name: "Master Graph", Difficulty: "Hard"},
		},
	}
}
