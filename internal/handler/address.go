package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

// GetAddress сохраненный адрес пользователя.
// @Summary      Сохраненный адрес
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Address
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Router       /address [get]
func (h *HTTPHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	addr, err := h.addresses.GetAddress(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(addr), http.StatusOK)
}

// SaveAddress сохраняет адрес.
// @Summary      Сохранить адрес
// @Tags         address
// @Accept       json
// @Security     BearerAuth
// @Param        request  body  Address  true  "Адрес"
// @Success      201
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Адрес уже сохранен"
// @Router       /address [post]
func (h *HTTPHandler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	var req Address
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.addresses.SaveAddress(r.Context(), creds, AddressJSONToEntity(req)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdateAddress обновляет адрес.
// @Summary      Обновить адрес
// @Tags         address
// @Accept       json
// @Security     BearerAuth
// @Param        request  body  Address  true  "Адрес"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Router       /address [put]
func (h *HTTPHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	var req Address
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.addresses.UpdateAddress(r.Context(), creds, AddressJSONToEntity(req)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAddress удаляет адрес.
// @Summary      Удалить адрес
// @Tags         address
// @Security     BearerAuth
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Router       /address [delete]
func (h *HTTPHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	if err := h.addresses.DeleteAddress(r.Context(), creds); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
