package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErr(t *testing.T) {
	t.Run(`каждый конструктор дает свой kind`, func(t *testing.T) {
		require.Equal(t, KindNotFound, KindOf(NotFound("вакансия не найдена")))
		require.Equal(t, KindInvalidState, KindOf(InvalidState("вакансия неактивна")))
		require.Equal(t, KindConflict, KindOf(Conflict("повторный отклик")))
		require.Equal(t, KindForbidden, KindOf(Forbidden("чужой отклик")))
		require.Equal(t, KindUnknown, KindOf(errors.New("прочая ошибка")))
		require.Equal(t, KindUnknown, KindOf(nil))
	})

	t.Run(`kind переживает обертывание`, func(t *testing.T) {
		err := errors.Wrap(Conflict("повторный отклик"), "ошибка создания отклика")
		require.Equal(t, true, IsConflict(err))
		require.Equal(t, false, IsNotFound(err))
	})

	t.Run(`текст ошибки не искажается`, func(t *testing.T) {
		err := NotFound("отклик не найден")
		require.Equal(t, "отклик не найден", err.Error())
	})
}
