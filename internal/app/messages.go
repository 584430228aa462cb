package app

import "github.com/idilsaglam/nasiya/internal/ledger"

const (
	msgTodoEmpty         = "Iltimos, vazifa nomini kiriting!"
	msgTodoAdded         = "Vazifa muvaffaqiyatli qo'shildi!"
	msgTodoToggled       = "Vazifa holati o'zgartirildi!"
	msgTodoEdited        = "Vazifa muvaffaqiyatli tahrirlandi!"
	msgTodoDeletePrompt  = "Ushbu vazifani o'chirishni istaysizmi?"
	msgTodoDeleted       = "Vazifa o'chirildi!"
	msgNoCompleted       = "Bajarilgan vazifalar mavjud emas!"
	msgClearCompletedAsk = "Hamma bajarilgan vazifalarni (%d ta) o'chirishni istaysizmi?"
	msgCompletedCleared  = "Bajarilgan vazifalar o'chirildi!"

	msgDebtAdded        = "Nasiya muvaffaqiyatli qo'shildi!"
	msgDebtToggled      = "Nasiya holati o'zgartirildi!"
	msgDebtEdited       = "Nasiya muvaffaqiyatli tahrirlandi!"
	msgDebtEditInvalid  = "Iltimos, barcha maydonlarni to'g'ri to'ldiring!"
	msgDebtDeletePrompt = "Ushbu nasiyani o'chirishni istaysizmi?"
	msgDebtDeleted      = "Nasiya o'chirildi!"
	msgNoPaid           = "To'langan nasiyalar mavjud emas!"
	msgClearPaidAsk     = "Hamma to'langan nasiyalarni (%d ta) o'chirishni istaysizmi?"
	msgPaidCleared      = "To'langan nasiyalar o'chirildi!"
	msgDueBeforeToday   = "Qaytarish sanasi bugundan oldin bo'lishi mumkin emas!"

	msgNotFound = "Yozuv topilmadi!"
)

// debtAddMessages are the per-field warnings for a new debt, in form order.
var debtAddMessages = map[ledger.Field]string{
	ledger.FieldCustomer: "Iltimos, mijoz ismini kiriting!",
	ledger.FieldProduct:  "Iltimos, mahsulot nomini kiriting!",
	ledger.FieldQty:      "Iltimos, to'g'ri miqdorni kiriting!",
	ledger.FieldPrice:    "Iltimos, to'g'ri narxni kiriting!",
	ledger.FieldDueDate:  "Iltimos, qaytarish sanasini tanlang!",
}
