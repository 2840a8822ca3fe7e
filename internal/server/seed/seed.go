// Package seed holds the fixture data a fresh server starts with.
// Each call returns new slices so stores never share backing arrays.
package seed

import (
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/server/models"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Users() []models.User {
	return []models.User{
		{
			ID: 1, Username: "admin", Email: "admin@example.com", Password: "admin123",
			Role: models.RoleAdmin, Name: "Administrador do Sistema", CreatedAt: at("2025-09-06T08:30:00Z"),
		},
		{
			ID: 2, Username: "editor", Email: "editor@example.com", Password: "editor123",
			Role: models.RoleEditor, Name: "Editor de Conteúdo", CreatedAt: at("2025-09-07T14:15:00Z"),
		},
		{
			ID: 3, Username: "user", Email: "user@example.com", Password: "user123",
			Role: models.RoleAuthor, Name: "Usuário Padrão", CreatedAt: at("2025-09-08T10:45:00Z"),
		},
	}
}

func Posts() []models.Post {
	return []models.Post{
		{
			ID:        1,
			Title:     "Introdução ao novo Angular 20",
			Content:   "Descubra as novidades e melhorias da versão mais recente do Angular.",
			AuthorID:  1,
			Author:    "Administrador do Sistema",
			CreatedAt: at("2025-09-07T10:00:00Z"),
			Status:    models.PostStatusPublished,
			Tags:      []string{"Angular", "Frontend", "TypeScript"},
		},
		{
			ID:        2,
			Title:     "PrimeNG: Criando Interfaces Modernas",
			Content:   "Utilize o PrimeNG para criar interfaces elegantes e responsivas.",
			AuthorID:  2,
			Author:    "Editor de Conteúdo",
			CreatedAt: at("2025-09-07T10:00:00Z"),
			Status:    models.PostStatusPublished,
			Tags:      []string{"PrimeNG", "UI/UX", "Angular"},
		},
		{
			ID:        3,
			Title:     "Melhores Práticas com TypeScript",
			Content:   "Dicas essenciais para escrever código TypeScript limpo e eficiente.",
			AuthorID:  3,
			Author:    "Usuário Padrão",
			CreatedAt: at("2025-09-07T10:00:00Z"),
			Status:    models.PostStatusPublished,
			Tags:      []string{"TypeScript", "Angular", "JavaScript"},
		},
		{
			ID:    4,
			Title: "Gerenciamento de Estado com NgRx",
			Content: "NgRx é uma biblioteca para gerenciamento de estado em aplicações Angular. " +
				"Aprenda os conceitos fundamentais e como implementar.",
			AuthorID:  1,
			Author:    "Administrador do Sistema",
			CreatedAt: at("2025-09-09T11:20:00Z"),
			Status:    models.PostStatusDraft,
			Tags:      []string{"ngrx", "angular", "rxjs"},
		},
	}
}

const (
	userTitle = "Novo Usuário Registrado"
	postTitle = "Novo Post Criado"
)

func userNote(id int, name, ts string, read bool) models.Notification {
	n := models.NewNotification(models.NotificationNewUser, userTitle,
		`O usuário "`+name+`" foi registrado com sucesso`)
	n.ID, n.Timestamp, n.Read = id, at(ts), read
	return n
}

func postNote(id int, title, ts string, read bool) models.Notification {
	n := models.NewNotification(models.NotificationNewPost, postTitle,
		`O post "`+title+`" foi criado com sucesso`)
	n.ID, n.Timestamp, n.Read = id, at(ts), read
	return n
}

func Notifications() []models.Notification {
	return []models.Notification{
		userNote(1, "Administrador do Sistema", "2025-09-06T08:30:00Z", true),
		userNote(2, "Editor de Conteúdo", "2025-09-07T14:15:00Z", true),
		userNote(3, "Usuário Padrão", "2025-09-08T10:45:00Z", false),
		postNote(4, "Introdução ao novo Angular 20", "2025-09-07T10:00:00Z", true),
		postNote(5, "PrimeNG: Criando Interfaces Modernas", "2025-09-07T10:00:00Z", false),
		postNote(6, "Melhores Práticas com TypeScript", "2025-09-07T10:00:00Z", false),
		postNote(7, "Gerenciamento de Estado com NgRx", "2025-09-09T11:20:00Z", false),
	}
}
