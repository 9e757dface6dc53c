// internal/services/seed_reviews.go
package services

import (
	"fmt"

	"github.com/vedabooks/shop-backend/internal/models"
)

type seedEntry struct {
	userName string
	rating   int
	comment  string
	helpful  int
	verified bool
	daysAgo  int
}

// The fixed review seed. Inserted once per book by SeedIfEmpty so the
// shop does not open with bare review sections.
var seedData = map[string][]seedEntry{
	"bhagavad-gita": {
		{"Анна Петрова", 5, "Невероятно глубокая книга! Комментарии помогают понять древнюю мудрость в контексте современной жизни. Рекомендую всем, кто ищет смысл жизни.", 12, true, 41},
		{"Михаил Козлов", 5, "Классика духовной литературы. Каждый раз перечитывая, открываю для себя что-то новое. Качество печати отличное.", 8, true, 102},
		{"Елена Смирнова", 4, "Очень информативная книга, но местами сложная для понимания. Нужно читать медленно и вдумчиво.", 5, false, 187},
	},
	"srimad-bhagavatam": {
		{"Дмитрий Волков", 5, "Великолепное произведение! Подробные комментарии делают древние тексты понятными современному читателю.", 15, true, 64},
		{"Ольга Новикова", 5, "Книга изменила моё понимание жизни. Рекомендую всем, кто интересуется ведической философией.", 10, true, 133},
	},
	"chaitanya-charitamrita": {
		{"Сергей Морозов", 4, "Интересная биография великого святого. Узнал много нового о движении санкиртаны.", 7, true, 58},
		{"Татьяна Лебедева", 5, "Вдохновляющая история жизни Шри Чайтаньи Махапрабху. Книга написана очень доступно.", 9, false, 149},
	},
	"science-of-self-realization": {
		{"Александр Кузнецов", 5, "Отличная книга для понимания основ ведической философии. Лекции очень глубокие.", 11, true, 77},
		{"Мария Соколова", 4, "Помогает понять природу души и сознания. Некоторые концепции требуют времени для осмысления.", 6, true, 202},
	},
	"isopanisad": {
		{"Игорь Петров", 4, "Компактная, но очень содержательная книга. Комментарии помогают понять суть Упанишад.", 8, true, 95},
	},
	"easy-journey": {
		{"Владимир Сидоров", 4, "Увлекательное описание ведической космологии. Открывает новые горизонты понимания вселенной.", 5, false, 171},
	},
	"krishna-book": {
		{"Екатерина Морозова", 5, "Прекрасная книга для детей и взрослых! Истории о играх Кришны очень увлекательные.", 13, true, 36},
		{"Андрей Козлов", 5, "Читаю детям перед сном. Им очень нравятся истории о Кришне. Качество иллюстраций отличное.", 7, true, 118},
	},
	"teachings-of-lord-kapila": {
		{"Николай Волков", 4, "Интересное изложение философии санкхьи. Помогает понять материальную природу.", 4, true, 226},
	},
}

func seedReviews() map[string][]models.Review {
	now := timeNow()

	out := make(map[string][]models.Review, len(seedData))
	for bookID, seeds := range seedData {
		reviews := make([]models.Review, 0, len(seeds))
		for i, seed := range seeds {
			reviews = append(reviews, models.Review{
				ID:       fmt.Sprintf("seed_%s_%d", bookID, i+1),
				BookID:   bookID,
				UserName: seed.userName,
				Rating:   seed.rating,
				Comment:  seed.comment,
				Date:     now.AddDate(0, 0, -seed.daysAgo),
				Helpful:  seed.helpful,
				Verified: seed.verified,
			})
		}
		out[bookID] = reviews
	}
	return out
}
