package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/query"
)

const (
	msgNotificationNotFound = "Notificação não encontrada"
	msgNotificationDeleted  = "Notificação removida com sucesso"
	msgAllMarkedRead        = "Todas as notificações foram marcadas como lidas"
	msgAllCleared           = "Todas as notificações foram removidas"
	msgReadCleared          = "Notificações lidas foram removidas"
)

func (r *Router) listNotifications(_ context.Context, req Request) Response {
	return reply(http.StatusOK, query.Notifications(r.notifications.List(), query.ParseParams(req.Query)))
}

func (r *Router) unreadNotifications(_ context.Context, req Request) Response {
	params := query.ParseParams(req.Query)
	params.UnreadOnly = true
	return reply(http.StatusOK, query.Notifications(r.notifications.List(), params))
}

func (r *Router) unreadCount(_ context.Context, _ Request) Response {
	return reply(http.StatusOK, CountBody{Count: query.UnreadCount(r.notifications.List())})
}

func (r *Router) notificationStats(_ context.Context, _ Request) Response {
	return reply(http.StatusOK, query.SummarizeNotifications(r.notifications.List()))
}

func (r *Router) getNotification(_ context.Context, req Request) Response {
	n, err := r.notifications.Get(req.ID)
	if err != nil {
		return notificationError(err)
	}
	return reply(http.StatusOK, n)
}

func (r *Router) createNotification(_ context.Context, req Request) Response {
	var in CreateNotificationRequest
	if err := decode(req, &in); err != nil {
		return notificationError(err)
	}
	n, err := r.notifications.Add(models.NewNotification(in.Type, in.Title, in.Message))
	if err != nil {
		return notificationError(err)
	}
	return reply(http.StatusCreated, n)
}

func (r *Router) markRead(_ context.Context, req Request) Response {
	n, err := r.notifications.Update(req.ID, func(n models.Notification) models.Notification {
		n.Read = true
		return n
	})
	if err != nil {
		return notificationError(err)
	}
	return reply(http.StatusOK, n)
}

func (r *Router) markAllRead(_ context.Context, _ Request) Response {
	count := r.notifications.UpdateAll(func(n models.Notification) models.Notification {
		n.Read = true
		return n
	})
	return reply(http.StatusOK, MessageBody{Message: msgAllMarkedRead, Count: &count})
}

func (r *Router) deleteNotification(_ context.Context, req Request) Response {
	if !r.notifications.Remove(req.ID) {
		return notificationError(common.ErrorNotFound)
	}
	return reply(http.StatusOK, MessageBody{Message: msgNotificationDeleted})
}

func (r *Router) clearAll(_ context.Context, _ Request) Response {
	count := r.notifications.RemoveWhere(func(models.Notification) bool { return true })
	return reply(http.StatusOK, MessageBody{Message: msgAllCleared, Count: &count})
}

func (r *Router) clearRead(_ context.Context, _ Request) Response {
	count := r.notifications.RemoveWhere(func(n models.Notification) bool { return n.Read })
	return reply(http.StatusOK, MessageBody{Message: msgReadCleared, Count: &count})
}

func notificationError(err error) Response {
	msg := err.Error()
	if errors.Is(err, common.ErrorNotFound) {
		msg = msgNotificationNotFound
	}
	return reply(statusOf(err), MessageBody{Message: msg})
}
