package service

import (
	"github.com/critmass/availability-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Availability contract.AvailabilityService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, parser contract.DateParser, log *zap.Logger) *Instance {
	return &Instance{
		Availability: newAvailability(dm, slackClient, parser, log),
	}
}
