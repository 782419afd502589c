package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"clinic-voice-tools/internal/converter"
	"clinic-voice-tools/internal/delivery/dto"
	"clinic-voice-tools/internal/delivery/http/middleware"
	"clinic-voice-tools/internal/infrastructure/metrics"
	"clinic-voice-tools/internal/toolcall"
	"clinic-voice-tools/internal/usecase"
	"clinic-voice-tools/pkg/response"

	"github.com/sirupsen/logrus"
)

const (
	ToolCheckSlots = "check_slots"
	ToolBookSlot   = "book_slot"

	maxBodyBytes = 1 << 20
)

type toolFunc func(ctx context.Context, args toolcall.Arguments) (*dto.ToolResponse, error)

type ToolHandler struct {
	toolUsecase usecase.ToolUsecase
	metrics     *metrics.ToolMetrics
	log         *logrus.Logger
}

func NewToolHandler(toolUsecase usecase.ToolUsecase, metrics *metrics.ToolMetrics, log *logrus.Logger) *ToolHandler {
	return &ToolHandler{
		toolUsecase: toolUsecase,
		metrics:     metrics,
		log:         log,
	}
}

func (h *ToolHandler) CheckSlots(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, ToolCheckSlots, converter.CheckSlotsSystemError, func(ctx context.Context, args toolcall.Arguments) (*dto.ToolResponse, error) {
		return h.toolUsecase.CheckSlots(ctx, &dto.CheckSlotsRequest{
			SearchTerm: args.First("doctorName", "doctor_name", "specialty"),
		})
	})
}

func (h *ToolHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, ToolBookSlot, converter.BookSlotSystemError, func(ctx context.Context, args toolcall.Arguments) (*dto.ToolResponse, error) {
		return h.toolUsecase.BookSlot(ctx, &dto.BookSlotRequest{
			DoctorName: args.First("doctorName", "doctor_name"),
			Time:       args.First("time"),
		})
	})
}

// serve runs one tool call and always renders a 200 body. Decode errors,
// usecase errors and panics all become the tool's system-error result.
func (h *ToolHandler) serve(w http.ResponseWriter, r *http.Request, tool, systemError string, fn toolFunc) {
	start := time.Now()
	body := h.run(r, tool, fn)
	if body == nil {
		body = converter.SystemError(systemError)
	}

	h.metrics.ObserveCall(tool, body.Outcome, time.Since(start).Seconds())
	response.Tool(w, body)
}

func (h *ToolHandler) run(r *http.Request, tool string, fn toolFunc) (body *dto.ToolResponse) {
	log := h.requestLog(r, tool)
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("Recovered panic in %s: %v", tool, rec)
			body = nil
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.Warnf("Failed to read %s request body: %+v", tool, err)
		return nil
	}
	log.Infof("Tool request: %s", raw)

	args, envelope, err := toolcall.Decode(raw)
	if err != nil {
		log.Warnf("Failed to decode %s request: %+v", tool, err)
		return nil
	}
	log.WithField("envelope", envelope).Debug("Extracted tool arguments")

	resp, err := fn(r.Context(), args)
	if err != nil {
		log.Warnf("Failed to handle %s: %+v", tool, err)
		return nil
	}
	log.WithField("outcome", resp.Outcome).Info("Tool call handled")
	return resp
}

// requestLog tags tool log lines with the request ID set by the request
// logger middleware.
func (h *ToolHandler) requestLog(r *http.Request, tool string) *logrus.Entry {
	entry := h.log.WithField("tool", tool)
	if reqID, ok := middleware.GetRequestIDFromContext(r.Context()); ok {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
