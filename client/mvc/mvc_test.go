package mvc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/thatmoosee/Study-Buddy/client/api"
	"github.com/thatmoosee/Study-Buddy/client/config"
	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

// backend is a scripted API server that counts hits per route.
type backend struct {
	mux *http.ServeMux

	mu     sync.Mutex
	hits   map[string]int
	bodies map[string][]string
}

func newBackend() *backend {
	return &backend{mux: http.NewServeMux(), hits: map[string]int{}, bodies: map[string][]string{}}
}

func (b *backend) handle(pattern, body string, status int) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		b.mu.Lock()
		b.hits[pattern]++
		b.bodies[pattern] = append(b.bodies[pattern], string(raw))
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func (b *backend) count(pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[pattern]
}

func (b *backend) body(pattern string, i int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i >= len(b.bodies[pattern]) {
		return ""
	}
	return b.bodies[pattern][i]
}

func setupSession(t *testing.T, b *backend) *Session {
	t.Helper()
	infoTimeout = time.Millisecond

	server := httptest.NewServer(b.mux)
	t.Cleanup(server.Close)

	client, err := api.New(config.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	s := NewSession(client)
	s.User = model.User{ID: model.NumericID(1), Email: "ana@uni.edu"}
	return s
}

// drain runs cmd and any batch it expands to, collecting the messages.
// Commands still running after a second are abandoned.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(time.Second):
		return nil
	}
}

// feed delivers msgs to m in order, ignoring the commands they return.
func feed(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loggedIn(email string) message.AuthMsg {
	return message.AuthMsg{Status: model.AuthStatusResponse{
		LoggedIn: true,
		User:     &model.User{ID: model.NumericID(1), Email: email},
	}}
}

func TestResourceListPlaceholder(t *testing.T) {
	l := NewResourceList("No notifications.", func(n model.Notification) string { return n.Message })
	styles := DefaultStyles()

	if got := l.View(true, styles.Cursor); got != "" {
		t.Errorf("View() before load = %q, want empty", got)
	}

	l.Replace([]model.Notification{{Message: "one"}, {Message: "two"}})
	l.Replace(nil)
	if got := l.View(true, styles.Cursor); got != "No notifications.\n" {
		t.Errorf("View() of empty list = %q, want exactly the placeholder", got)
	}

	l.Replace([]model.Notification{{Message: "b"}, {Message: "a"}})
	got := l.View(false, styles.Cursor)
	if got != "b\na\n" {
		t.Errorf("View() = %q, want server order b, a", got)
	}
}

func TestResourceListWindow(t *testing.T) {
	l := NewResourceList("", func(i int) string { return string(rune('a' + i)) })
	l.Size = 3
	l.Replace([]int{0, 1, 2, 3, 4, 5})

	tests := []struct {
		cursor int
		start  int
		end    int
	}{
		{0, 0, 3},
		{3, 2, 5},
		{5, 3, 6},
	}
	for _, tt := range tests {
		l.Cursor = tt.cursor
		if start, end := l.window(); start != tt.start || end != tt.end {
			t.Errorf("window() with cursor %d = %d..%d, want %d..%d", tt.cursor, start, end, tt.start, tt.end)
		}
	}

	l.Move(10)
	if l.Cursor != 5 {
		t.Errorf("Move() past the end left cursor at %d, want 5", l.Cursor)
	}
	l.Remove(5)
	if l.Cursor != 4 || len(l.Items) != 5 {
		t.Errorf("Remove() of last item: cursor %d, %d items", l.Cursor, len(l.Items))
	}
}

func TestGuard(t *testing.T) {
	b := newBackend()
	s := setupSession(t, b)

	next, _ := InitialGroupsModel(s).Update(message.AuthMsg{Status: model.AuthStatusResponse{LoggedIn: false}})
	if _, ok := next.(LoginPage); !ok {
		t.Errorf("logged out guard switched to %T, want LoginPage", next)
	}
	if s.User.Email != "" {
		t.Errorf("logged out guard kept user %q", s.User.Email)
	}

	failure := errors.New("connection refused")
	_, cmd := InitialHomeModel(s).Update(message.AuthMsg{Err: failure})
	if !errors.Is(s.Err, failure) {
		t.Errorf("session error = %v, want %v", s.Err, failure)
	}
	if cmd == nil {
		t.Fatal("guard failure did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("guard failure cmd = %T, want tea.QuitMsg", cmd())
	}

	page, cmd := InitialNotificationsModel(s).Update(loggedIn("bo@uni.edu"))
	if !page.(NotificationsPage).ready || cmd == nil {
		t.Error("logged in guard did not start loading")
	}
	if s.User.Email != "bo@uni.edu" {
		t.Errorf("session user = %q, want bo@uni.edu", s.User.Email)
	}
}

func TestGuardLoadsFromStatusEndpoint(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/auth/status", `{"logged_in": true, "user": {"user_id": 7, "email": "ana@uni.edu"}}`, http.StatusOK)
	s := setupSession(t, b)
	s.User = model.User{}

	msgs := drain(InitialHomeModel(s).Init())
	page := feed(InitialHomeModel(s), msgs...).(HomePage)

	if !page.ready {
		t.Fatal("home page not ready after guard")
	}
	if s.User.ID.String() != "7" {
		t.Errorf("user id = %q, want 7", s.User.ID)
	}
	if !strings.Contains(page.View(), "Logged in as: ana@uni.edu") {
		t.Errorf("home view missing identity:\n%s", page.View())
	}
}

func TestEmptyMyGroupsShowsPlaceholder(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/group/list", `{"groups": []}`, http.StatusOK)
	b.handle("GET /api/group/listall", `{"groups": [{"id": "g1", "name": "Algorithms", "members": [], "specified_class": "", "study_times": []}]}`, http.StatusOK)
	b.handle("GET /api/study_schedule/get", `{"study": []}`, http.StatusOK)
	s := setupSession(t, b)

	page, cmd := InitialGroupsModel(s).Update(loggedIn("ana@uni.edu"))
	page = feed(page, drain(cmd)...)
	view := page.View()

	if n := strings.Count(view, noGroupsText); n != 1 {
		t.Errorf("placeholder shown %d times, want 1:\n%s", n, view)
	}
	if !strings.Contains(view, noSessionsText) {
		t.Errorf("sessions placeholder missing:\n%s", view)
	}
	if !strings.Contains(view, "Algorithms") || strings.Contains(view, noAllGroupsText) {
		t.Errorf("all groups not rendered:\n%s", view)
	}
}

func TestFailedListKeepsPriorContent(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/group/list", `{"error": "boom"}`, http.StatusInternalServerError)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	m.mine.Replace([]model.Group{{ID: model.TextID("g1"), Name: "Algorithms"}})

	page := feed(m, drain(message.ListCmd(message.MyGroups, s.API.ListGroups))...).(GroupsPage)
	if len(page.mine.Items) != 1 || page.mine.Items[0].Name != "Algorithms" {
		t.Errorf("failed fetch replaced the list: %+v", page.mine.Items)
	}
}

func TestJoinRefetchesBothGroupLists(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/group/join", `{"success": true}`, http.StatusOK)
	b.handle("GET /api/group/list", `{"groups": [{"id": "g1", "name": "Algorithms", "members": ["ana@uni.edu"]}]}`, http.StatusOK)
	b.handle("GET /api/group/listall", `{"groups": [{"id": "g1", "name": "Algorithms", "members": ["ana@uni.edu"]}]}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	m = m.openGroupInfo(model.Group{ID: model.TextID("g1"), Name: "Algorithms", Members: []string{"bo@uni.edu"}})

	page, cmd := m.Update(key("j"))
	page, cmd = page.Update(drain(cmd)[0])
	page = feed(page, drain(cmd)...)

	if got := b.body("POST /api/group/join", 0); !strings.Contains(got, `"group_id":"g1"`) {
		t.Errorf("join body = %s", got)
	}
	if n := b.count("GET /api/group/list"); n != 1 {
		t.Errorf("my groups fetched %d times, want 1", n)
	}
	if n := b.count("GET /api/group/listall"); n != 1 {
		t.Errorf("all groups fetched %d times, want 1", n)
	}

	groups := page.(GroupsPage)
	if groups.overlay != noOverlay {
		t.Error("popup still open after join")
	}
	if len(groups.mine.Items) != 1 {
		t.Errorf("my groups = %+v, want the joined group", groups.mine.Items)
	}
}

func TestJoinRejectionShowsErrorVerbatim(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/group/join", `{"success": false, "error": "Already a member of this group"}`, http.StatusBadRequest)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	m.mine.Replace([]model.Group{{ID: model.TextID("g0"), Name: "Calculus"}})
	m = m.openGroupInfo(model.Group{ID: model.TextID("g1"), Name: "Algorithms"})

	page, cmd := m.Update(key("j"))
	page, cmd = page.Update(drain(cmd)[0])
	groups := page.(GroupsPage)

	if groups.popupErr != "Already a member of this group" {
		t.Errorf("popup error = %q", groups.popupErr)
	}
	if cmd != nil {
		t.Error("rejected join issued further commands")
	}
	if b.count("GET /api/group/list")+b.count("GET /api/group/listall") != 0 {
		t.Error("rejected join re-fetched lists")
	}
	if len(groups.mine.Items) != 1 || groups.mine.Items[0].Name != "Calculus" {
		t.Errorf("list changed after rejection: %+v", groups.mine.Items)
	}
	if !strings.Contains(groups.View(), "Already a member of this group") {
		t.Error("error not rendered in popup")
	}
}

func TestFilterWithEmptyValueSendsNothing(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/group/filter", `{"groups": []}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	page, _ := m.Update(key("f"))
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("   ")})
	page, cmd := page.Update(key("enter"))

	if cmd != nil {
		drain(cmd)
	}
	if n := b.count("POST /api/group/filter"); n != 0 {
		t.Errorf("filter sent %d requests, want 0", n)
	}
	if got := page.(GroupsPage).form.err; got != filterRequiredText {
		t.Errorf("form error = %q, want %q", got, filterRequiredText)
	}
}

func TestFilterReplacesAllGroups(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/group/filter", `{"groups": []}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	m.all.Replace([]model.Group{{ID: model.TextID("g1"), Name: "Algorithms"}})

	page, _ := m.Update(key("f"))
	page, _ = page.Update(key("up"))
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRight})
	page, _ = page.Update(key("down"))
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Mon")})
	page, cmd := page.Update(key("enter"))

	var listed []tea.Msg
	for _, msg := range drain(cmd) {
		if _, ok := msg.(message.ListedMsg[model.Group]); ok {
			listed = append(listed, msg)
		}
	}
	page = feed(page, listed...)

	if got := b.body("POST /api/group/filter", 0); !strings.Contains(got, `"type":"time"`) || !strings.Contains(got, `"value":"Mon"`) {
		t.Errorf("filter body = %s", got)
	}
	groups := page.(GroupsPage)
	if len(groups.all.Items) != 0 {
		t.Errorf("all groups = %+v, want replaced by empty result", groups.all.Items)
	}
	if n := strings.Count(groups.View(), noMatchingText); n != 1 {
		t.Errorf("matching placeholder shown %d times", n)
	}
}

func TestCreateGroupTrimsStudyTimes(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/group/create", `{"success": true}`, http.StatusCreated)
	b.handle("GET /api/group/list", `{"groups": []}`, http.StatusOK)
	b.handle("GET /api/group/listall", `{"groups": []}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	page, _ := m.Update(key("c"))
	groups := page.(GroupsPage)
	groups.form.inputs[0].SetValue("  Algorithms ")
	groups.form.inputs[1].SetValue("CS 301")
	groups.form.inputs[2].SetValue("a, b")

	page, cmd := groups.Update(key("enter"))
	page, cmd = page.Update(drain(cmd)[0])
	drain(cmd)

	var sent model.CreateGroupRequest
	if err := json.Unmarshal([]byte(b.body("POST /api/group/create", 0)), &sent); err != nil {
		t.Fatalf("create body: %v", err)
	}
	if sent.Name != "Algorithms" {
		t.Errorf("name = %q, want trimmed", sent.Name)
	}
	if len(sent.StudyTimes) != 2 || sent.StudyTimes[0] != "a" || sent.StudyTimes[1] != "b" {
		t.Errorf("study_times = %q, want [a b]", sent.StudyTimes)
	}
	if page.(GroupsPage).overlay != noOverlay {
		t.Error("create popup still open")
	}
	if b.count("GET /api/group/list") != 1 || b.count("GET /api/group/listall") != 1 {
		t.Error("create did not re-fetch both group lists once")
	}
}

func TestCreateGroupRequiresClass(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/group/create", `{"success": true}`, http.StatusCreated)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	page, _ := m.Update(key("c"))
	groups := page.(GroupsPage)
	groups.form.inputs[0].SetValue("Algorithms")

	page, cmd := groups.Update(key("enter"))
	page, _ = page.Update(drain(cmd)[0])

	if got := page.(GroupsPage).form.err; got != "Class required." {
		t.Errorf("form error = %q, want %q", got, "Class required.")
	}
	if b.count("POST /api/group/create") != 0 {
		t.Error("create sent without a class")
	}
}

func TestGroupInfoPopup(t *testing.T) {
	g := model.Group{
		ID:         model.TextID("g1"),
		Name:       "Algorithms",
		Members:    []string{"ana@uni.edu", "bo@uni.edu"},
		StudyTimes: []string{"Mon", "Wed"},
	}
	want := "Algorithms\nID: g1\nMembers: ana@uni.edu, bo@uni.edu\nClass: None\nStudy times: Mon,Wed\n"
	if got := groupInfo(g); got != want {
		t.Errorf("groupInfo() = %q, want %q", got, want)
	}

	b := newBackend()
	s := setupSession(t, b)
	m := InitialGroupsModel(s)
	m.ready = true
	m.overlay = filterOverlay

	m = m.openGroupInfo(g)
	if m.overlay != groupInfoOverlay {
		t.Errorf("overlay = %v, want group info only", m.overlay)
	}
	if !m.actions.Leave || m.actions.Join {
		t.Errorf("member actions = %+v", m.actions)
	}

	page, _ := m.Update(key("s"))
	if page.(GroupsPage).overlay != scheduleOverlay {
		t.Error("schedule did not take the overlay slot")
	}
}

func TestScheduleSession(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/study_schedule/create", `{"success": true}`, http.StatusOK)
	b.handle("GET /api/study_schedule/get", `{"study": [{"id": 3, "title": "Review", "start_time": "10:00", "end_time": "12:00", "group_id": "g1"}]}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialGroupsModel(s)
	m.ready = true
	m = m.openGroupInfo(model.Group{ID: model.TextID("g1"), Name: "Algorithms", Members: []string{"ana@uni.edu"}})
	page, _ := m.Update(key("s"))
	groups := page.(GroupsPage)
	groups.form.inputs[0].SetValue("Review")
	groups.form.inputs[1].SetValue("10:00")
	groups.form.inputs[2].SetValue("12:00")

	page, cmd := groups.Update(key("enter"))
	page, cmd = page.Update(drain(cmd)[0])
	page = feed(page, drain(cmd)...)

	body := b.body("POST /api/study_schedule/create", 0)
	for _, want := range []string{`"session_name":"Review"`, `"start_date":"10:00"`, `"end_date":"12:00"`, `"group_id":"g1"`} {
		if !strings.Contains(body, want) {
			t.Errorf("schedule body %s missing %s", body, want)
		}
	}
	if got := page.(GroupsPage).sessions.Items; len(got) != 1 || got[0].Title != "Review" {
		t.Errorf("sessions = %+v", got)
	}
}

func TestNotificationToggleOnlyChangesItsItem(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/notifications/read", `{"success": true}`, http.StatusOK)
	b.handle("POST /api/notifications/delete", `{"success": true}`, http.StatusOK)
	b.handle("GET /api/notifications", `{"success": true, "notifications": []}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialNotificationsModel(s)
	m.ready = true
	m.notifications.Replace([]model.Notification{
		{ID: model.NumericID(1), Message: "first"},
		{ID: model.NumericID(2), Message: "second"},
		{ID: model.NumericID(3), Message: "third", Read: true},
	})

	page, _ := m.Update(key("down"))
	page, cmd := page.Update(key(" "))
	page = feed(page, drain(cmd)...)

	if got := b.body("POST /api/notifications/read", 0); !strings.Contains(got, `"id":2`) {
		t.Errorf("read body = %s, want id 2", got)
	}
	items := page.(NotificationsPage).notifications.Items
	if items[0].Read || !items[1].Read || !items[2].Read {
		t.Errorf("read flags = %v %v %v, want false true true", items[0].Read, items[1].Read, items[2].Read)
	}

	page, cmd = page.Update(key("d"))
	page = feed(page, drain(cmd)...)
	items = page.(NotificationsPage).notifications.Items
	if len(items) != 2 || items[0].Message != "first" || items[1].Message != "third" {
		t.Errorf("after delete = %+v, want first and third", items)
	}

	if n := b.count("GET /api/notifications"); n != 0 {
		t.Errorf("notifications re-fetched %d times, want 0", n)
	}
}

func TestNotificationFailureLeavesItem(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/notifications/read", `{"success": false, "error": "Notification not found"}`, http.StatusBadRequest)
	s := setupSession(t, b)

	m := InitialNotificationsModel(s)
	m.ready = true
	m.notifications.Replace([]model.Notification{{ID: model.NumericID(1), Message: "first"}})

	page, cmd := m.Update(key(" "))
	page = feed(page, drain(cmd)...)

	if page.(NotificationsPage).notifications.Items[0].Read {
		t.Error("failed toggle changed the item")
	}
}

func TestNotificationDoubleToggleRestoresItem(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/notifications/read", `{"success": true}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialNotificationsModel(s)
	m.ready = true
	m.notifications.Replace([]model.Notification{{ID: model.NumericID(1), Message: "first"}})

	page, first := m.Update(key(" "))
	page, second := page.Update(key(" "))
	page = feed(page, append(drain(first), drain(second)...)...)

	if n := b.count("POST /api/notifications/read"); n != 2 {
		t.Errorf("read sent %d times, want 2", n)
	}
	if page.(NotificationsPage).notifications.Items[0].Read {
		t.Error("two toggles left the item read")
	}
}

func TestLateAuthCheckDoesNotReload(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/group/list", `{"groups": []}`, http.StatusOK)
	b.handle("GET /api/group/listall", `{"groups": []}`, http.StatusOK)
	b.handle("GET /api/study_schedule/get", `{"study": []}`, http.StatusOK)
	s := setupSession(t, b)

	page, cmd := InitialGroupsModel(s).Update(loggedIn("ana@uni.edu"))
	page, late := page.Update(loggedIn("ana@uni.edu"))
	feed(page, drain(cmd)...)

	if late != nil {
		t.Error("second auth answer started another load")
	}
	if n := b.count("GET /api/group/list"); n != 1 {
		t.Errorf("my groups fetched %d times, want 1", n)
	}
}

func TestChatSendRendersReturnedChat(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/chat/send", `{"success": true, "study": {"chat_id": 1, "name": "Exam prep", "members": [1, 2], "messages": ["bo@uni.edu: hi", "ana@uni.edu: hello"]}}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialChatsModel(s)
	m.ready = true
	m.chats.Replace([]model.Chat{{ChatID: model.NumericID(1), Name: "Exam prep", Messages: []string{"bo@uni.edu: hi"}}})

	page, _ := m.Update(key("enter"))
	chats := page.(ChatsPage)
	if chats.overlay != chatOverlay {
		t.Fatal("chat popup did not open")
	}
	chats.popup.textbox.SetValue("  hello ")

	page, cmd := chats.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	page = feed(page, drain(cmd)...)
	chats = page.(ChatsPage)

	if got := b.body("POST /api/chat/send", 0); !strings.Contains(got, `"chat_id":1`) || !strings.Contains(got, `"message":"hello"`) {
		t.Errorf("send body = %s", got)
	}
	if got := chats.popup.chat.Messages; len(got) != 2 || got[1] != "ana@uni.edu: hello" {
		t.Errorf("popup messages = %q", got)
	}
	if chats.popup.textbox.Value() != "" {
		t.Error("composer not cleared")
	}
	if b.count("GET /api/chat/listallchats") != 0 {
		t.Error("send re-fetched the chat list")
	}
}

func TestChatMessagesPlaceholder(t *testing.T) {
	styles := DefaultStyles()
	if got := chatMessages(model.Chat{}, styles.Sender); got != noMessagesText+"\n" {
		t.Errorf("chatMessages() = %q", got)
	}
}

func TestJoinChatRefetchesChats(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/chat/join", `{"success": true}`, http.StatusOK)
	b.handle("GET /api/chat/listallchats", `{"chats": {"4": {"chat_id": 4, "name": "Physics", "members": [1], "messages": []}}}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialChatsModel(s)
	m.ready = true
	page, _ := m.Update(key("tab"))
	chats := page.(ChatsPage)
	c := chats.form.choice.next()
	chats.form.choice = &c
	chats.form.inputs[0].SetValue(" 4 ")

	page, cmd := chats.Update(key("enter"))
	page, cmd = page.Update(drain(cmd)[0])
	page = feed(page, drain(cmd)...)

	if got := b.body("POST /api/chat/join", 0); !strings.Contains(got, `"chat_id":"4"`) {
		t.Errorf("join body = %s", got)
	}
	if n := b.count("GET /api/chat/listallchats"); n != 1 {
		t.Errorf("chats fetched %d times, want 1", n)
	}
	if items := page.(ChatsPage).chats.Items; len(items) != 1 || items[0].Name != "Physics" {
		t.Errorf("chats = %+v", items)
	}
}

func TestFriendIDRequired(t *testing.T) {
	b := newBackend()
	b.handle("POST /api/friends/add", `{"success": true}`, http.StatusOK)
	s := setupSession(t, b)

	m := InitialProfileModel(s)
	m.ready = true
	m.pane = formPane

	page, cmd := m.Update(key("enter"))
	page, _ = page.Update(drain(cmd)[0])

	if got := page.(ProfilePage).form.err; got != "Friend ID required." {
		t.Errorf("form error = %q", got)
	}
	if b.count("POST /api/friends/add") != 0 {
		t.Error("add friend sent without an id")
	}
}

func TestFriendsListUsesFriendsField(t *testing.T) {
	b := newBackend()
	b.handle("GET /api/friends/list", `{"friends": [5, "u7"], "groups": []}`, http.StatusOK)
	s := setupSession(t, b)

	page, cmd := InitialProfileModel(s).Update(loggedIn("ana@uni.edu"))
	page = feed(page, drain(cmd)...)

	view := page.View()
	if !strings.Contains(view, "5\n") || !strings.Contains(view, "u7\n") || strings.Contains(view, noFriendsText) {
		t.Errorf("friends not rendered:\n%s", view)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short line", 20, "short line"},
		{"one two three", 7, "one two\nthree"},
		{"a verylongword b", 4, "a\nverylongword\nb"},
		{"  spaced   out  ", 20, "spaced out"},
	}
	for _, tt := range tests {
		if got := wrap(tt.text, tt.width); got != tt.want {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
