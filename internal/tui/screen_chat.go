package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type chatMode int

const (
	chatBrowse chatMode = iota
	chatAddFriend
	chatRename
	chatConversation
)

type chatState struct {
	mode    chatMode
	cursor  int
	inputs  []textinput.Model
	focus   int
	compose textinput.Model
}

func (m model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.chat.mode {
	case chatAddFriend, chatRename:
		return m.updateChatForm(msg)
	case chatConversation:
		return m.updateConversation(msg)
	}

	friends := m.services.ChatService.Friends()

	switch {
	case key.Matches(msg, keys.up):
		if m.chat.cursor > 0 {
			m.chat.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.chat.cursor < len(friends)-1 {
			m.chat.cursor++
		}
	case key.Matches(msg, keys.add):
		code := newInput(m.labels.FriendCode, 10)
		code.CharLimit = 6
		code.Focus()
		name := newInput(m.labels.FriendName, 30)
		m.chat = chatState{mode: chatAddFriend, cursor: m.chat.cursor, inputs: []textinput.Model{code, name}}
	case key.Matches(msg, keys.rename):
		name := newInput(m.labels.YourName, 30)
		name.SetValue(m.services.ChatService.Identity().DisplayName)
		name.Focus()
		m.chat = chatState{mode: chatRename, cursor: m.chat.cursor, inputs: []textinput.Model{name}}
	case key.Matches(msg, keys.copy):
		return m, copyToClipboard(m.services.ChatService.Identity().Code)
	case key.Matches(msg, keys.remove):
		if m.chat.cursor >= len(friends) {
			return m, nil
		}
		friend := friends[m.chat.cursor]
		m.ask(m.labels.DeleteFriendAsk+" "+friend.Name, func(m *model) tea.Cmd {
			left := m.services.ChatService.RemoveFriend(m.ctx, friend.Code)
			m.chat.cursor = max(0, min(m.chat.cursor, len(left)-1))
			return nil
		})
	case key.Matches(msg, keys.enter):
		if m.chat.cursor >= len(friends) {
			return m, nil
		}
		if _, err := m.services.ChatService.Select(m.ctx, friends[m.chat.cursor].Code); err != nil {
			m.showError(err)
			return m, nil
		}
		compose := newInput(m.labels.TypeMessage, 50)
		compose.Focus()
		m.chat.mode = chatConversation
		m.chat.compose = compose
	}
	return m, nil
}

func (m model) updateChatForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.chat = chatState{cursor: m.chat.cursor}
		return m, nil
	case key.Matches(msg, keys.tab, keys.backtab):
		if len(m.chat.inputs) > 1 {
			m.chat.inputs[m.chat.focus].Blur()
			m.chat.focus = (m.chat.focus + 1) % len(m.chat.inputs)
			m.chat.inputs[m.chat.focus].Focus()
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitChatForm()
	}

	var cmd tea.Cmd
	m.chat.inputs[m.chat.focus], cmd = m.chat.inputs[m.chat.focus].Update(msg)
	return m, cmd
}

func (m model) submitChatForm() (tea.Model, tea.Cmd) {
	switch m.chat.mode {
	case chatAddFriend:
		friends, err := m.services.ChatService.AddFriend(m.ctx, m.chat.inputs[0].Value(), m.chat.inputs[1].Value())
		if err != nil {
			m.showError(err)
			return m, nil
		}
		m.chat = chatState{cursor: len(friends) - 1}
		m.status = m.labels.FriendAdded
		return m, clearStatusAfter()
	case chatRename:
		if _, err := m.services.ChatService.SetDisplayName(m.ctx, m.chat.inputs[0].Value()); err != nil {
			m.showError(err)
			return m, nil
		}
	}

	m.chat = chatState{cursor: m.chat.cursor}
	return m, nil
}

func (m model) updateConversation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.services.ChatService.Deselect()
		m.chat = chatState{cursor: m.chat.cursor}
		return m, nil
	case key.Matches(msg, keys.enter):
		m.services.ChatService.Send(m.ctx, m.chat.compose.Value())
		m.chat.compose.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.chat.compose, cmd = m.chat.compose.Update(msg)
	return m, cmd
}

func (m model) viewChat() string {
	l := m.labels
	chat := m.services.ChatService
	identity := chat.Identity()

	switch m.chat.mode {
	case chatAddFriend:
		body := l.FriendCode + ": " + m.chat.inputs[0].View() + "\n" +
			l.FriendName + ": " + m.chat.inputs[1].View() + "\n"
		return renderPage(l.AddFriend, body, "tab  enter "+l.Save+"  esc "+l.Cancel)
	case chatRename:
		body := l.YourName + ": " + m.chat.inputs[0].View() + "\n"
		return renderPage(l.ChatTitle, body, "enter "+l.Save+"  esc "+l.Cancel)
	case chatConversation:
		return m.viewConversation()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s    %s: %s\n", l.YourCode, titleStyle.Render(identity.Code), l.YourName, identity.DisplayName))
	b.WriteString(helpStyle.Render(l.LocalOnly) + "\n\n")

	b.WriteString(titleStyle.Render(l.Friends) + "\n")
	friends := chat.Friends()
	if len(friends) == 0 {
		b.WriteString(helpStyle.Render(l.NoFriends) + "\n")
	}
	for i, f := range friends {
		b.WriteString(cursorMark(i == m.chat.cursor) + f.Name + "  " + helpStyle.Render("#"+f.Code) + "\n")
	}

	return renderPage(l.ChatTitle, b.String(),
		"enter  a "+l.AddFriend+"  d "+l.DeleteFriend+"  n "+l.YourName+"  c "+l.YourCode)
}

func (m model) viewConversation() string {
	l := m.labels
	chat := m.services.ChatService
	friend, _ := chat.Selected()

	var b strings.Builder
	messages := chat.Messages()
	if len(messages) == 0 {
		b.WriteString(helpStyle.Render(l.NoMessages) + "\n")
	}
	for _, msg := range messages {
		at := time.UnixMilli(msg.TimestampMs).In(m.opts.Zone).Format("01-02 15:04")
		b.WriteString(fmt.Sprintf("%s %s: %s\n", helpStyle.Render(at), titleStyle.Render(msg.SenderName), msg.Text))
	}
	b.WriteString("\n" + m.chat.compose.View() + "\n")

	return renderPage(friend.Name+"  #"+friend.Code, b.String(), "enter  esc "+l.Back)
}
