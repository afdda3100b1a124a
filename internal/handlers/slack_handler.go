package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/entity"
	slackcmd "github.com/critmass/availability-bot/internal/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	availability  contract.AvailabilityService
	signingSecret string
	log           *zap.Logger
}

func New(slackClient contract.SlackClient, availability contract.AvailabilityService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		availability:  availability,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Scopes are loaded before any command is accepted for them.
	if err := h.availability.LoadScope(r.Context(), s.ChannelID, s.ChannelName); err != nil {
		h.log.Error("failed to load scope", zap.String("channel", s.ChannelID), zap.Error(err))
		h.respondWithError(w, "Something went wrong setting up this channel")
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// verifiedBody reads the request body and checks the Slack signature,
// writing the failure status itself when verification fails.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAdd(r, cmd, slashCmd)
	case slackcmd.CmdDrop:
		return h.handleDrop(r, cmd, slashCmd)
	case slackcmd.CmdShow:
		return h.handleShow(cmd, slashCmd)
	case slackcmd.CmdCM:
		return h.handleCM(r, cmd, slashCmd)
	case slackcmd.CmdPoll:
		return h.handlePoll(r, cmd, slashCmd)
	case slackcmd.CmdHello:
		return h.handleHello(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAdd(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	dates, err := h.availability.ResolveDateRange(entity.Today(), cmd.Args)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("%v. Try `/avail add friday` or `/avail add friday to monday`.", err))
	}

	user := h.actingUser(slashCmd)

	result, err := h.availability.AddAvailability(r.Context(), slashCmd.ChannelID, user, dates)
	if err != nil {
		h.log.Error("add availability failed", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Something went wrong recording your availability")
	}

	text := fmt.Sprintf("Thanks %s, you've been marked available on %s", user.DisplayName, displayDates(result.Dates))
	if result.SaveErr != nil {
		text += "\n:warning: saving failed; this may not survive a restart"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleDrop(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Tell me which dates: `/avail drop friday` or `/avail drop all`")
	}

	// "all" means every date the user is currently on.
	var dates []entity.Date
	if cmd.Args[0] != "all" {
		var err error
		dates, err = h.availability.ResolveDateRange(entity.Today(), cmd.Args)
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("%v. Try `/avail drop friday` or `/avail drop all`.", err))
		}
	}

	user := h.actingUser(slashCmd)

	result, err := h.availability.RemoveAvailability(r.Context(), slashCmd.ChannelID, user, dates)
	if err != nil {
		h.log.Error("remove availability failed", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Something went wrong updating your availability")
	}

	text := fmt.Sprintf("Thanks %s, you've been marked unavailable on %s", user.DisplayName, displayDates(result.Dates))
	if result.SaveErr != nil {
		text += "\n:warning: saving failed; this may not survive a restart"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleShow(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	var dates []entity.Date
	if len(cmd.Args) > 0 {
		var err error
		dates, err = h.availability.ResolveDateRange(entity.Today(), cmd.Args)
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("%v. Try `/avail show` or `/avail show friday to monday`.", err))
		}
	}

	rosters, err := h.availability.QueryAvailability(slashCmd.ChannelID, dates)
	if err != nil {
		h.log.Error("query availability failed", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Something went wrong reading availability")
	}

	var b strings.Builder
	if status, err := h.availability.ScopeStatus(slashCmd.ChannelID); err == nil && status.Reached {
		fmt.Fprintf(&b, "critical mass of %d reached.\n", status.Threshold)
	}

	if len(rosters) == 0 {
		b.WriteString("No availability")
	}
	for i, roster := range rosters {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\t:\t%s", roster.Date.Display(), strings.Join(roster.Names, ", "))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleCM(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Usage: `/avail cm <number>`")
	}

	n, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse("Critical mass must be a number: `/avail cm 5`")
	}

	result, err := h.availability.SetThreshold(r.Context(), slashCmd.ChannelID, n)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidThreshold) {
			return h.createErrorResponse("Critical mass must be a positive integer")
		}
		h.log.Error("set threshold failed", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Something went wrong setting critical mass")
	}

	text := fmt.Sprintf("Critical mass set to %d", n)
	if result.SaveErr != nil {
		text += "\n:warning: saving failed; this may not survive a restart"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handlePoll(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	days := domain.DefaultPollDays
	if len(cmd.Args) > 0 {
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n < 1 {
			return h.createErrorResponse("Poll length must be a positive number of days: `/avail poll 10`")
		}
		days = n
	}

	if _, err := h.availability.CreatePoll(r.Context(), slashCmd.ChannelID, days); err != nil {
		h.log.Error("create poll failed", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Something went wrong creating the poll")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Poll posted for the next %d days. Press a date to toggle your availability.", days),
	}
}

func (h *SlackHandler) handleHello(cmd *slackcmd.Command) *slack.Msg {
	var text string
	switch {
	case len(cmd.Args) == 0:
		text = "hello where?"
	case strings.Contains(cmd.Args[0], "there"):
		text = "General Kenobi!"
	default:
		text = "I have absolutely no idea what you're saying right now"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// HandleInteraction processes Block Kit button presses from polls.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type == slack.InteractionTypeBlockActions {
		for _, action := range callback.ActionCallback.BlockActions {
			if !slackcmd.IsToggleAction(action.ActionID) {
				continue
			}
			h.handleToggle(r, &callback, action.Value)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// handleToggle flips the pressing user's availability for the button's
// date and refreshes the message the button lives in. The button value
// is the single source of which (scope, date) it represents.
func (h *SlackHandler) handleToggle(r *http.Request, callback *slack.InteractionCallback, value string) {
	channelID, date, anchor, err := slackcmd.DecodeToggleValue(value)
	if err != nil {
		h.log.Warn("ignoring malformed toggle", zap.String("value", value), zap.Error(err))
		return
	}

	if err := h.availability.LoadScope(r.Context(), channelID, callback.Channel.Name); err != nil {
		h.log.Error("failed to load scope", zap.String("channel", channelID), zap.Error(err))
		return
	}

	user, err := h.availability.ResolveUser(callback.User.ID)
	if err != nil {
		h.log.Warn("falling back to interaction payload identity",
			zap.String("user", callback.User.ID), zap.Error(err))
		user = entity.User{
			SlackUserID: callback.User.ID,
			UserName:    callback.User.Name,
			DisplayName: callback.User.Name,
		}
	}

	result, err := h.availability.ToggleAvailability(r.Context(), channelID, user, date)
	if err != nil {
		h.log.Error("toggle failed", zap.String("channel", channelID),
			zap.String("date", date.String()), zap.Error(err))
		return
	}
	if result.SaveErr != nil {
		h.log.Warn("toggle saved in memory only", zap.String("channel", channelID), zap.Error(result.SaveErr))
	}

	block, err := h.availability.RenderPollBlock(channelID, anchor)
	if err != nil {
		h.log.Error("failed to re-render poll block", zap.String("channel", channelID), zap.Error(err))
		return
	}

	_, _, _, err = h.slackClient.UpdateMessage(channelID, callback.Container.MessageTs,
		slack.MsgOptionBlocks(slackcmd.PollMessageBlocks(channelID, block)...))
	if err != nil {
		h.log.Error("failed to update poll message", zap.String("channel", channelID), zap.Error(err))
	}
}

// actingUser resolves the command issuer, falling back to the payload
// identity when the Slack API lookup fails.
func (h *SlackHandler) actingUser(slashCmd *slack.SlashCommand) entity.User {
	user, err := h.availability.ResolveUser(slashCmd.UserID)
	if err != nil {
		h.log.Warn("falling back to slash command identity",
			zap.String("user", slashCmd.UserID), zap.Error(err))
		return entity.User{
			SlackUserID: slashCmd.UserID,
			UserName:    slashCmd.UserName,
			DisplayName: slashCmd.UserName,
		}
	}
	return user
}

func displayDates(dates []entity.Date) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.Display())
	}
	return strings.Join(parts, "; ")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
