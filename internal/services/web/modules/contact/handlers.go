package contact

import (
	"errors"
	"log"
	"net/http"

	contactsvc "github.com/hustredowls/redowls.club/internal/services/contact"
	"github.com/hustredowls/redowls.club/internal/services/shared/i18nhttp"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/modules/public"
	apperrors "github.com/hustredowls/redowls.club/internal/services/web/platform/errors"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/httpx"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/weberror"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

// maxFormBytes bounds the request body; the field caps total well under it.
const maxFormBytes = 32 << 10

type handlers struct {
	deps    module.Dependencies
	service module.ContactService
	logger  *log.Logger
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.deps.RequestMeta.HasSameOriginProof(r) {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindForbidden, "error.forbidden.body", "contact form posted without same-origin proof"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.body", "parse contact form: "+err.Error()))
		return
	}

	tag, _ := i18nhttp.ResolveTag(r)
	submission := contactsvc.Submission{
		FullName: r.PostForm.Get(contactsvc.FieldFullName),
		Email:    r.PostForm.Get(contactsvc.FieldEmail),
		Body:     r.PostForm.Get(contactsvc.FieldMessage),
		Locale:   tag.String(),
	}
	msg, err := h.service.Submit(r.Context(), submission)

	var invalid *contactsvc.ValidationError
	switch {
	case errors.As(err, &invalid):
		submission = submission.Normalize()
		form := webtemplates.ContactFormView{
			FullName: submission.FullName,
			Email:    submission.Email,
			Message:  submission.Body,
			Invalid:  make(map[string]bool, len(invalid.Fields)),
		}
		for _, field := range invalid.Fields {
			form.Invalid[field] = true
		}
		public.WriteLanding(w, r, h.deps, form, http.StatusBadRequest)
	case err != nil:
		h.logger.Printf("contact submit failed err=%v", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	default:
		h.logger.Printf("contact message stored id=%s locale=%s", msg.ID, msg.Locale)
		httpx.WriteRedirect(w, r, routepath.ContactSent())
	}
}
