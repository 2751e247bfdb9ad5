package web

import (
	"time"

	"lottotrack/models"
)

// ballDTO is a number with its display colour class
type ballDTO struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
}

func toBalls(numbers []int) []ballDTO {
	balls := make([]ballDTO, len(numbers))
	for i, n := range numbers {
		balls[i] = ballDTO{Number: n, Color: models.BallColorClass(n)}
	}
	return balls
}

type drawDTO struct {
	DrawNo   int       `json:"draw_no"`
	DrawDate string    `json:"draw_date"`
	Numbers  []ballDTO `json:"numbers"`
	Bonus    ballDTO   `json:"bonus"`
}

func toDrawDTO(d models.Draw) drawDTO {
	return drawDTO{
		DrawNo:   d.DrawNo,
		DrawDate: d.DrawDate.Format("2006-01-02"),
		Numbers:  toBalls(d.Numbers[:]),
		Bonus:    ballDTO{Number: d.Bonus, Color: models.BallColorClass(d.Bonus)},
	}
}

type drawPageDTO struct {
	Draws       []drawDTO `json:"draws"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
	TotalCount  int       `json:"total_count"`
	PerPage     int       `json:"per_page"`
}

func toDrawPageDTO(p *models.DrawPage) drawPageDTO {
	draws := make([]drawDTO, len(p.Draws))
	for i, d := range p.Draws {
		draws[i] = toDrawDTO(d)
	}
	return drawPageDTO{
		Draws:       draws,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		TotalCount:  p.TotalCount,
		PerPage:     p.PerPage,
	}
}

type pickDTO struct {
	PickID   int64     `json:"pick_id"`
	DrawNo   *int      `json:"draw_no"`
	Numbers  []ballDTO `json:"numbers"`
	PickDate time.Time `json:"pick_date"`
}

func toPickDTO(p models.Pick) pickDTO {
	return pickDTO{
		PickID:   p.ID,
		DrawNo:   p.DrawNo,
		Numbers:  toBalls(p.Numbers[:]),
		PickDate: p.CreatedAt,
	}
}

func toPickDTOs(picks []models.Pick) []pickDTO {
	dtos := make([]pickDTO, len(picks))
	for i, p := range picks {
		dtos[i] = toPickDTO(p)
	}
	return dtos
}

type userDTO struct {
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Status   string    `json:"status"`
	IsAdmin  bool      `json:"is_admin"`
	JoinDate time.Time `json:"join_date"`
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{
		UserID:   u.ID,
		Username: u.Username,
		Status:   u.NormalizedStatus(),
		IsAdmin:  u.IsAdmin(),
		JoinDate: u.JoinDate,
	}
}

type recommendationDTO struct {
	Numbers    []ballDTO                `json:"numbers"`
	Candidates []models.RankedCandidate `json:"candidates"`
}

type messageDTO struct {
	Message string `json:"message"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
