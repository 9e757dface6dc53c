// internal/catalog/data.go
package catalog

import "github.com/vedabooks/shop-backend/internal/models"

// The fixed catalog table. Loaded once, never mutated; everything the
// shop sells in a given process lifetime is here.
var books = []models.Book{
	{
		ID:            "bhagavad-gita",
		Title:         "Бхагавад-гита как она есть",
		Author:        "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:         850,
		OriginalPrice: 1100,
		Rating:        4.9,
		ReviewCount:   127,
		Image:         "/images/books/bhagavad-gita.jpg",
		Description:   "Классика мировой духовной литературы с подробными комментариями.",
		FullDescription: "Самое авторитетное издание великого философского памятника " +
			"с санскритским текстом, пословным и литературным переводом и комментариями.",
		Category:  models.CategoryScripture,
		Language:  models.LanguageRU,
		Pages:     1056,
		ISBN:      "978-5-906504-13-1",
		InStock:   true,
		Year:      2020,
		Publisher: "The Bhaktivedanta Book Trust",
		Tags:      []string{"гита", "философия", "йога", "классика"},
		VideoURL:  "https://www.youtube.com/watch?v=p1M1c_n9rGQ",
	},
	{
		ID:          "srimad-bhagavatam",
		Title:       "Шримад-Бхагаватам. Первая песнь",
		Author:      "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:       3500,
		Rating:      4.8,
		ReviewCount: 89,
		Image:       "/images/books/srimad-bhagavatam.jpg",
		Description: "Зрелый плод древа ведической мудрости, энциклопедия духовной жизни.",
		Category:    models.CategoryScripture,
		Language:    models.LanguageRU,
		Pages:       912,
		ISBN:        "978-5-906504-22-3",
		InStock:     true,
		Year:        2019,
		Publisher:   "The Bhaktivedanta Book Trust",
		Tags:        []string{"бхагаватам", "пураны", "веды"},
	},
	{
		ID:          "chaitanya-charitamrita",
		Title:       "Шри Чайтанья-чаритамрита. Ади-лила",
		Author:      "Кришнадас Кавираджа Госвами",
		Price:       2800,
		Rating:      4.7,
		ReviewCount: 45,
		Image:       "/images/books/chaitanya-charitamrita.jpg",
		Description: "Жизнеописание Шри Чайтаньи Махапрабху, основателя движения санкиртаны.",
		Category:    models.CategoryBiography,
		Language:    models.LanguageRU,
		Pages:       1200,
		ISBN:        "978-5-906504-31-5",
		InStock:     true,
		Year:        2018,
		Publisher:   "The Bhaktivedanta Book Trust",
		Tags:        []string{"биография", "бенгалия", "санкиртана"},
	},
	{
		ID:            "science-of-self-realization",
		Title:         "Наука самоосознания",
		Author:        "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:         1200,
		OriginalPrice: 1400,
		Rating:        4.6,
		ReviewCount:   67,
		Image:         "/images/books/science-of-self-realization.jpg",
		Description:   "Сборник лекций, бесед и статей об основах ведической философии.",
		Category:      models.CategoryPhilosophy,
		Language:      models.LanguageRU,
		Pages:         480,
		ISBN:          "978-5-906504-44-5",
		InStock:       true,
		Year:          2021,
		Publisher:     "The Bhaktivedanta Book Trust",
		Tags:          []string{"философия", "лекции", "самоосознание"},
	},
	{
		ID:          "isopanisad",
		Title:       "Шри Ишопанишад",
		Author:      "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:       1000,
		Rating:      4.5,
		ReviewCount: 38,
		Image:       "/images/books/isopanisad.jpg",
		Description: "Восемнадцать мантр, открывающих тайное знание Упанишад.",
		Category:    models.CategoryPhilosophy,
		Language:    models.LanguageRU,
		Pages:       176,
		ISBN:        "978-5-906504-50-6",
		InStock:     true,
		Year:        2022,
		Publisher:   "The Bhaktivedanta Book Trust",
		Tags:        []string{"упанишады", "философия", "мантры"},
	},
	{
		ID:          "easy-journey",
		Title:       "Лёгкое путешествие на другие планеты",
		Author:      "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:       450,
		Rating:      4.3,
		ReviewCount: 21,
		Image:       "/images/books/easy-journey.jpg",
		Description: "Ведическая космология и путешествие сознания за пределы материи.",
		Category:    models.CategoryCosmology,
		Language:    models.LanguageRU,
		Pages:       96,
		ISBN:        "978-5-906504-58-2",
		InStock:     false,
		Year:        2017,
		Publisher:   "The Bhaktivedanta Book Trust",
		Tags:        []string{"космология", "планеты", "йога"},
	},
	{
		ID:            "krishna-book",
		Title:         "Кришна. Верховная Личность Бога",
		Author:        "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:         1800,
		OriginalPrice: 2200,
		Rating:        4.9,
		ReviewCount:   94,
		Image:         "/images/books/krishna-book.jpg",
		Description:   "Истории об играх Кришны, пересказанные для современного читателя.",
		Category:      models.CategoryChildren,
		Language:      models.LanguageRU,
		Pages:         832,
		ISBN:          "978-5-906504-61-2",
		InStock:       true,
		Year:          2023,
		Publisher:     "The Bhaktivedanta Book Trust",
		Tags:          []string{"кришна", "истории", "дети"},
	},
	{
		ID:          "teachings-of-lord-kapila",
		Title:       "Учение Господа Капилы, сына Девахути",
		Author:      "А.Ч. Бхактиведанта Свами Прабхупада",
		Price:       1500,
		Rating:      4.4,
		ReviewCount: 17,
		Image:       "/images/books/teachings-of-lord-kapila.jpg",
		Description: "Философия санкхьи: строение материальной природы и путь освобождения.",
		Category:    models.CategoryPhilosophy,
		Language:    models.LanguageEN,
		Pages:       416,
		ISBN:        "978-5-906504-73-5",
		InStock:     true,
		Year:        2016,
		Publisher:   "The Bhaktivedanta Book Trust",
		Tags:        []string{"санкхья", "философия", "капила"},
	},
}

var categories = []models.BookCategory{
	{ID: models.CategoryScripture, Name: "Священные писания", Slug: "scripture"},
	{ID: models.CategoryPhilosophy, Name: "Философия", Slug: "philosophy"},
	{ID: models.CategoryBiography, Name: "Биографии", Slug: "biography"},
	{ID: models.CategoryChildren, Name: "Для детей", Slug: "children"},
	{ID: models.CategoryCosmology, Name: "Космология", Slug: "cosmology"},
}

// Books returns a copy of the catalog table. Callers may reorder the
// returned slice freely.
func Books() []models.Book {
	out := make([]models.Book, len(books))
	copy(out, books)
	return out
}

func Categories() []models.BookCategory {
	out := make([]models.BookCategory, len(categories))
	copy(out, categories)
	return out
}

// BookByID returns the catalog entry with the given id, or false.
func BookByID(id string) (models.Book, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}
