// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shared by the terminal UI.
//
// Every screen reads its wording from a [Labels] value chosen by the current
// language, so switching the language re-renders the whole UI at once.
package app

import "github.com/MKhiriev/days-together/models"

// AppName is the product name shown in headers and the about screen.
const AppName = "Days Together"

// Feature is one entry of the about screen feature list.
type Feature struct {
	Title       string
	Description string
}

// Labels holds the translated strings of one language.
type Labels struct {
	// tabs
	TabHome     string
	TabGames    string
	TabCalendar string
	TabChat     string
	TabAbout    string

	// home
	HomeTitle          string
	Days               string
	Hours              string
	Since              string
	And                string
	PartnerA           string
	PartnerB           string
	StartDate          string
	StartDateHint      string
	UpcomingMilestones string
	Completed          string
	DaysToGo           string
	Reset              string
	ResetConfirm       string
	DataCleared        string

	// games
	GamesTitle    string
	GamesSubtitle string

	// calendar
	CalendarTitle string
	WeekDays      [7]string
	Months        [12]string
	ChooseEmoji   string
	AddNote       string
	Save          string
	Delete        string
	DeleteNote    string
	DeleteConfirm string
	Cancel        string

	// chat
	ChatTitle          string
	YourCode           string
	YourName           string
	CodeCopied         string
	Friends            string
	NoFriends          string
	AddFriend          string
	FriendCode         string
	FriendName         string
	EnterFriendCode    string
	EnterFriendName    string
	CannotAddYourself  string
	FriendAlreadyAdded string
	FriendAdded        string
	DeleteFriend       string
	DeleteFriendAsk    string
	NoMessages         string
	TypeMessage        string
	LocalOnly          string

	// about
	AboutTitle       string
	AboutDescription string
	Features         []Feature
	Language         string
	Version          string
	BuildDate        string
	BuildCommit      string
	Export           string
	Exported         string

	// common
	Error        string
	InvalidInput string
	InvalidDate  string
	InvalidEmoji string
	EmptyName    string
	StorageError string
	Yes          string
	No           string
	Close        string
	Back         string
	Quit         string
}

// For returns the labels of lang. Unknown languages fall back to English.
func For(lang models.Language) Labels {
	if lang == models.Spanish {
		return spanish
	}
	return english
}

var english = Labels{
	TabHome:     "Home",
	TabGames:    "Games",
	TabCalendar: "Calendar",
	TabChat:     "Chat",
	TabAbout:    "About",

	HomeTitle:          "Days Together",
	Days:               "Days",
	Hours:              "Hours",
	Since:              "Since",
	And:                "&",
	PartnerA:           "Your name",
	PartnerB:           "Partner's name",
	StartDate:          "Start date",
	StartDateHint:      "YYYY-MM-DD HH:MM",
	UpcomingMilestones: "Upcoming Milestones",
	Completed:          "Completed! 🎉",
	DaysToGo:           "days to go",
	Reset:              "Reset",
	ResetConfirm:       "Clear both names and restart the counter from now?",
	DataCleared:        "All data has been cleared!",

	GamesTitle:    "Couple Games",
	GamesSubtitle: "Fun activities to enjoy together",

	CalendarTitle: "Our Calendar",
	WeekDays:      [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	ChooseEmoji:   "Choose an Emoji",
	AddNote:       "Add a Note",
	Save:          "Save",
	Delete:        "Delete",
	DeleteNote:    "Delete Note",
	DeleteConfirm: "Are you sure you want to delete this note?",
	Cancel:        "Cancel",

	ChatTitle:          "Chat",
	YourCode:           "Your code",
	YourName:           "Your name",
	CodeCopied:         "Code copied to clipboard",
	Friends:            "Friends",
	NoFriends:          "No friends yet. Share your code!",
	AddFriend:          "Add Friend",
	FriendCode:         "Friend code",
	FriendName:         "Friend name",
	EnterFriendCode:    "Please enter a friend code",
	EnterFriendName:    "Please enter a friend name",
	CannotAddYourself:  "You cannot add yourself as a friend",
	FriendAlreadyAdded: "This friend is already added",
	FriendAdded:        "Friend added!",
	DeleteFriend:       "Delete Friend",
	DeleteFriendAsk:    "Remove this friend?",
	NoMessages:         "No messages yet. Say hi!",
	TypeMessage:        "Type a message...",
	LocalOnly:          "Messages stay on this device",

	AboutTitle:       "About",
	AboutDescription: "An app to celebrate every day you spend together.",
	Features: []Feature{
		{Title: "Track Your Love", Description: "See how many days and hours you have been together"},
		{Title: "Calendar & Notes", Description: "Mark special days with notes and emojis"},
		{Title: "Couple Games", Description: "Fun activities to strengthen your bond"},
		{Title: "Celebrate Milestones", Description: "Keep track of 100, 365, 500 and 1000 days"},
		{Title: "Personalize Names", Description: "Add both of your names"},
		{Title: "CST Timezone", Description: "All times are calculated in Central Standard Time"},
	},
	Language:    "Language",
	Version:     "Version",
	BuildDate:   "Build date",
	BuildCommit: "Commit",
	Export:      "Export data",
	Exported:    "Data exported to",

	Error:        "Error",
	InvalidInput: "Invalid input",
	InvalidDate:  "Please enter a valid date in the past",
	InvalidEmoji: "Please choose a single emoji",
	EmptyName:    "Name cannot be empty",
	StorageError: "Could not save, changes are kept for this session",
	Yes:          "yes",
	No:           "no",
	Close:        "close",
	Back:         "back",
	Quit:         "quit",
}

var spanish = Labels{
	TabHome:     "Inicio",
	TabGames:    "Juegos",
	TabCalendar: "Calendario",
	TabChat:     "Chat",
	TabAbout:    "Acerca de",

	HomeTitle:          "Días Juntos",
	Days:               "Días",
	Hours:              "Horas",
	Since:              "Desde",
	And:                "&",
	PartnerA:           "Tu nombre",
	PartnerB:           "Nombre de tu pareja",
	StartDate:          "Fecha de inicio",
	StartDateHint:      "AAAA-MM-DD HH:MM",
	UpcomingMilestones: "Próximos Hitos",
	Completed:          "¡Completado! 🎉",
	DaysToGo:           "días para llegar",
	Reset:              "Reiniciar",
	ResetConfirm:       "¿Borrar ambos nombres y reiniciar el contador desde ahora?",
	DataCleared:        "¡Todos los datos han sido borrados!",

	GamesTitle:    "Juegos de Pareja",
	GamesSubtitle: "Actividades divertidas para disfrutar juntos",

	CalendarTitle: "Nuestro Calendario",
	WeekDays:      [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	Months: [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	ChooseEmoji:   "Elige un Emoji",
	AddNote:       "Agregar una Nota",
	Save:          "Guardar",
	Delete:        "Eliminar",
	DeleteNote:    "Eliminar Nota",
	DeleteConfirm: "¿Estás seguro de que quieres eliminar esta nota?",
	Cancel:        "Cancelar",

	ChatTitle:          "Chat",
	YourCode:           "Tu código",
	YourName:           "Tu nombre",
	CodeCopied:         "Código copiado al portapapeles",
	Friends:            "Amigos",
	NoFriends:          "Aún no tienes amigos. ¡Comparte tu código!",
	AddFriend:          "Agregar Amigo",
	FriendCode:         "Código del amigo",
	FriendName:         "Nombre del amigo",
	EnterFriendCode:    "Ingresa el código de tu amigo",
	EnterFriendName:    "Ingresa el nombre de tu amigo",
	CannotAddYourself:  "No puedes agregarte a ti mismo",
	FriendAlreadyAdded: "Este amigo ya fue agregado",
	FriendAdded:        "¡Amigo agregado!",
	DeleteFriend:       "Eliminar Amigo",
	DeleteFriendAsk:    "¿Eliminar a este amigo?",
	NoMessages:         "Aún no hay mensajes. ¡Saluda!",
	TypeMessage:        "Escribe un mensaje...",
	LocalOnly:          "Los mensajes se quedan en este dispositivo",

	AboutTitle:       "Acerca de",
	AboutDescription: "Una app para celebrar cada día que pasan juntos.",
	Features: []Feature{
		{Title: "Sigue Tu Amor", Description: "Ve cuántos días y horas llevan juntos"},
		{Title: "Calendario y Notas", Description: "Marca días especiales con notas y emojis"},
		{Title: "Juegos de Pareja", Description: "Actividades divertidas para fortalecer su vínculo"},
		{Title: "Celebra Hitos", Description: "Lleva la cuenta de 100, 365, 500 y 1000 días"},
		{Title: "Personaliza Nombres", Description: "Agrega los nombres de ambos"},
		{Title: "Zona Horaria CST", Description: "Todos los tiempos se calculan en Hora Estándar Central"},
	},
	Language:    "Idioma",
	Version:     "Versión",
	BuildDate:   "Fecha de compilación",
	BuildCommit: "Commit",
	Export:      "Exportar datos",
	Exported:    "Datos exportados a",

	Error:        "Error",
	InvalidInput: "Entrada inválida",
	InvalidDate:  "Ingresa una fecha válida en el pasado",
	InvalidEmoji: "Elige un solo emoji",
	EmptyName:    "El nombre no puede estar vacío",
	StorageError: "No se pudo guardar, los cambios se mantienen en esta sesión",
	Yes:          "sí",
	No:           "no",
	Close:        "cerrar",
	Back:         "atrás",
	Quit:         "salir",
}
