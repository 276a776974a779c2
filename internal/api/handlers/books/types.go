package books

import "github.com/5w1tchy/bookshelf-api/internal/models"

// bookPayload is the JSON body of create and replace requests.
// Absent fields decode to their zero value.
type bookPayload struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

func (p bookPayload) input() models.BookInput {
	return models.BookInput{
		Name:      p.Name,
		Year:      p.Year,
		Author:    p.Author,
		Summary:   p.Summary,
		Publisher: p.Publisher,
		PageCount: p.PageCount,
		ReadPage:  p.ReadPage,
		Reading:   p.Reading,
	}
}

type createdData struct {
	BookID string `json:"bookId"`
}

type listData struct {
	Books []models.BookSummary `json:"books"`
}

type bookData struct {
	Book models.Book `json:"book"`
}
