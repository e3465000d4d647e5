// Package cli is the interactive terminal shell of the application. It plays
// the role the screen stack plays in a mobile client: prompting, rendering and
// navigation live here, while every state transition goes through the
// workflow usecases. The prompt loop is strictly sequential, so at most one
// network call is ever in flight for a session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"govcourier/config"
	"govcourier/internal/delivery"
	"govcourier/internal/domain/entity"
	"govcourier/internal/usecase"

	"go.uber.org/fx"
)

const defaultProvider = "Казпочта"

// Params defines the dependencies of the shell.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Placement usecase.OrderPlacement
	Board     usecase.CourierBoard
}

// Shell drives the requester and courier flows over a line-based terminal.
type Shell struct {
	cfg       *config.Config
	logger    *slog.Logger
	placement usecase.OrderPlacement
	board     usecase.CourierBoard

	in  *bufio.Scanner
	out io.Writer
}

// NewShell builds the terminal shell reading from in and writing to out.
func NewShell(params Params, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		cfg:       params.Config,
		logger:    params.Logger,
		placement: params.Placement,
		board:     params.Board,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

var _ delivery.Delivery = (*Shell)(nil)

// Serve runs one user session to completion. The launch request id decides
// the role: a request number means a document requester, its absence means a
// courier browsing the board.
func (s *Shell) Serve(ctx context.Context) error {
	identity := entity.Identity{
		RequestNumber: strings.TrimSpace(s.cfg.Launch.RequestID),
	}

	if identity.RequestNumber != "" {
		s.printf("№ заявки %s\n", identity.RequestNumber)
	}

	recipient, ok := s.authorize(ctx, &identity)
	if !ok {
		return nil // input exhausted
	}

	if identity.RequestNumber == "" {
		return s.courierFlow(ctx, identity)
	}

	return s.requesterFlow(ctx, identity, recipient)
}

// authorize runs the shared entry steps: IIN verification and profile load.
// Both re-prompt on failure, leaving the session state untouched in between.
func (s *Shell) authorize(ctx context.Context, identity *entity.Identity) (*entity.Recipient, bool) {
	for {
		iin, ok := s.prompt("Введите ИИН: ")
		if !ok {
			return nil, false
		}

		exists, err := s.placement.VerifyIdentity(ctx, iin)
		if err != nil {
			s.printf("Неверный ИИН. Попробуйте снова.\n")
			s.logger.Debug("identity check failed", slog.Any("error", err))

			continue
		}
		if !exists {
			s.printf("Неверный ИИН. Попробуйте снова.\n")

			continue
		}

		recipient, err := s.placement.LoadProfile(ctx, iin)
		if err != nil {
			// Identity stays verified; only the profile load is retried.
			s.printf("Не удалось найти имя. Попробуйте снова.\n")
			s.logger.Debug("profile load failed", slog.Any("error", err))

			continue
		}

		identity.IIN = iin
		identity.Phone = recipient.Phone
		s.printf("Здравствуйте, %s!\n", recipient.FullName())

		return recipient, true
	}
}

// requesterFlow drafts, submits and pays for a delivery order.
func (s *Shell) requesterFlow(ctx context.Context, identity entity.Identity, recipient *entity.Recipient) error {
	for {
		draft, ok := s.draftLoop(ctx, identity, *recipient)
		if !ok {
			return nil
		}

		confirmed, retry, ok := s.submitLoop(ctx, draft)
		if !ok {
			return nil
		}
		if retry {
			continue // back to drafting with fresh fields
		}

		return s.payLoop(ctx, confirmed)
	}
}

// draftLoop gathers the order fields. Geocoding happens inside DraftOrder and
// is allowed to fail silently from the user's point of view.
func (s *Shell) draftLoop(ctx context.Context, identity entity.Identity, recipient entity.Recipient) (*entity.OrderDraft, bool) {
	provider, ok := s.promptDefault("Курьерская служба", defaultProvider)
	if !ok {
		return nil, false
	}

	address, ok := s.prompt("Адрес доставки: ")
	if !ok {
		return nil, false
	}

	trusted, ok := s.promptDefault("ИИН представителя (пусто — получу сам)", "")
	if !ok {
		return nil, false
	}

	instructions, ok := s.promptDefault("Комментарий курьеру", "")
	if !ok {
		return nil, false
	}

	draft, err := s.placement.DraftOrder(ctx, usecase.DraftOrderInput{
		Identity:       identity,
		Recipient:      recipient,
		AddressText:    address,
		Provider:       provider,
		Instructions:   instructions,
		TrustedFaceIIN: trusted,
	})
	if err != nil {
		s.printf("Что-то пошло не так: %v\n", err)

		return nil, true // draft again
	}

	if draft.Address.HasCoordinates() {
		s.printf("Адрес найден: %.5f, %.5f (%s, %s)\n",
			draft.Address.Resolved.Lat(), draft.Address.Resolved.Lon(),
			draft.Address.DistanceHint, draft.Address.TimeHint)
	} else {
		s.printf("Адрес не удалось найти на карте, доставка всё равно возможна.\n")
	}

	return draft, true
}

// submitLoop submits the draft until it is accepted or the user chooses to
// edit the fields. A failed submission leaves the draft intact.
func (s *Shell) submitLoop(ctx context.Context, draft *entity.OrderDraft) (confirmed *entity.ConfirmedOrder, retryDraft, alive bool) {
	if draft == nil {
		return nil, true, true
	}

	for {
		confirmed, err := s.placement.SubmitOrder(ctx, draft)
		if err == nil {
			s.printf("Заказ №%d создан. Отдел выдачи: %s\n", confirmed.OrderID, confirmed.BranchName)

			return confirmed, false, true
		}

		s.printf("Что-то пошло не так. Напишите всю информацию.\n")
		s.logger.Debug("order submission failed", slog.Any("error", err))

		answer, ok := s.promptDefault("Повторить отправку? (y — повторить, n — изменить данные)", "y")
		if !ok {
			return nil, false, false
		}
		if strings.EqualFold(answer, "n") {
			return nil, true, true
		}
	}
}

// payLoop confirms payment until the server acknowledges it.
func (s *Shell) payLoop(ctx context.Context, confirmed *entity.ConfirmedOrder) error {
	s.printf("К оплате (Jusan): %d KZT\n", confirmed.Price)

	for {
		answer, ok := s.promptDefault("Оплатить? (y/n)", "y")
		if !ok {
			return nil
		}
		if strings.EqualFold(answer, "n") {
			s.printf("Оплата отложена. Заказ №%d ждёт оплаты.\n", confirmed.OrderID)

			return nil
		}

		if err := s.placement.Pay(ctx, confirmed.OrderID); err != nil {
			s.printf("Оплата не прошла. Попробуйте снова.\n")
			s.logger.Debug("payment failed", slog.Any("error", err))

			continue
		}

		s.printf("Оплата прошла успешно. Спасибо!\n")

		return nil
	}
}

// courierFlow renders the order board and accepts jobs. The board is
// refetched after every accept; nothing is mutated locally.
func (s *Shell) courierFlow(ctx context.Context, identity entity.Identity) error {
	for {
		listings, err := s.board.Orders(ctx)
		if err != nil {
			s.printf("Не удалось загрузить заказы: %v\n", err)

			if _, ok := s.promptDefault("Повторить? (y/n)", "y"); !ok {
				return nil
			}

			continue
		}

		s.renderBoard(listings)

		answer, ok := s.prompt("Номер заказа (r — обновить, q — выход): ")
		if !ok || strings.EqualFold(answer, "q") {
			return nil
		}
		if strings.EqualFold(answer, "r") {
			continue
		}

		orderID, err := strconv.Atoi(answer)
		if err != nil {
			s.printf("Нужен номер заказа из списка.\n")

			continue
		}

		phone, ok := s.promptDefault("Телефон для смс", identity.Phone)
		if !ok {
			return nil
		}

		if err := s.board.Accept(ctx, usecase.AcceptOrderInput{
			OrderID:      orderID,
			CourierPhone: phone,
			CourierIIN:   identity.IIN,
		}); err != nil {
			s.printf("Что-то пошло не так. Попробуйте снова.\n")
			s.logger.Debug("accept failed", slog.Any("error", err))

			continue
		}

		s.printf("Заказ №%d успешно передан.\n", orderID)
	}
}

func (s *Shell) renderBoard(listings []entity.OrderListing) {
	if len(listings) == 0 {
		s.printf("Свободных заказов нет.\n")

		return
	}

	s.printf("Свободные заказы:\n")
	for _, l := range listings {
		s.printf("  №%d  %s  %s  %d KZT  [%s]\n",
			l.ID, l.DisplayAddress(), l.RecipientFullName(), l.DeliveryPrice, l.Status)
	}
}

// prompt reads one non-empty line, re-asking while the input is blank.
// The second result is false once the input stream is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	for {
		fmt.Fprint(s.out, label)
		if !s.in.Scan() {
			return "", false
		}

		text := strings.TrimSpace(s.in.Text())
		if text != "" {
			return text, true
		}
	}
}

// promptDefault reads one line, substituting def when the line is blank.
func (s *Shell) promptDefault(label, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}

	if !s.in.Scan() {
		return "", false
	}

	text := strings.TrimSpace(s.in.Text())
	if text == "" {
		return def, true
	}

	return text, true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
