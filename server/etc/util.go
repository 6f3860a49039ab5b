package etc

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/thatmoosee/Study-Buddy/server/middleware"
	"github.com/thatmoosee/Study-Buddy/server/repository"
	"github.com/thatmoosee/Study-Buddy/util"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

// Response writes v as JSON with the given status.
func Response(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	util.FailOnError(err)
}

func Ok(w http.ResponseWriter, msg string) {
	Response(w, http.StatusOK, model.Resp{Success: true, Message: msg})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	Response(w, status, model.Resp{Success: false, Error: msg})
}

// Decode reads a JSON body into v, answering 400 itself when it can't.
func Decode(w http.ResponseWriter, req *http.Request, v any) bool {
	defer req.Body.Close()
	if err := util.DecodeJSON(req.Body, v); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON format")
		return false
	}
	return true
}

func GetDb(req *http.Request) *repository.Database {
	db, _ := req.Context().Value(middleware.ContextKeyData).(*repository.Database)
	return db
}

func GetUser(req *http.Request) int64 {
	id, _ := req.Context().Value(middleware.ContextKeyUser).(int64)
	return id
}

// NumericId parses ids the backend hands out as numbers, whatever form the
// client sent them in.
func NumericId(id model.ID) (int64, bool) {
	n, err := strconv.ParseInt(id.String(), 10, 64)
	return n, err == nil
}
