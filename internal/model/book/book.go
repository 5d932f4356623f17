package book

// Book is a single catalog record. Price is in yen.
type Book struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Price       int    `json:"price" validate:"min=0"`
	Description string `json:"description"`
}

// Seed returns the fixture collection that mirrors the embedded dataset.
func Seed() []Book {
	return []Book{
		{
			ID:          "1",
			Title:       "リーダブルコード",
			Author:      "Dustin Boswell",
			Price:       2640,
			Description: "より良いコードを書くためのシンプルで実践的なテクニック。",
		},
		{
			ID:          "2",
			Title:       "プログラミング言語Go",
			Author:      "Alan A. A. Donovan",
			Price:       4180,
			Description: "Go の言語仕様と標準ライブラリを網羅した定番の入門書。",
		},
		{
			ID:          "3",
			Title:       "達人プログラマー",
			Author:      "David Thomas",
			Price:       3080,
			Description: "熟達に向けたあなたの旅。",
		},
		{
			ID:          "4",
			Title:       "Clean Architecture",
			Author:      "Robert C. Martin",
			Price:       3520,
			Description: "達人に学ぶソフトウェアの構造と設計。",
		},
		{
			ID:          "5",
			Title:       "Web を支える技術",
			Author:      "山本 陽平",
			Price:       2948,
			Description: "HTTP、URI、HTML、そして REST。",
		},
		{
			ID:     "6",
			Title:  "入門 監視",
			Author: "Mike Julian",
			Price:  2860,
		},
	}
}
