package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Dosada05/roster-graphql/lib/logger/sl"
)

const maxBodyBytes = 1_048_576 // 1MB

// Values of extensions.code for errors raised before execution starts.
const (
	codeBadRequest = "BAD_REQUEST"
	codeInternal   = "INTERNAL"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	// Unknown keys are ignored: clients add their own (id, extensions, ...)
	// next to query, operationName and variables.
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBodyBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

// errorResponse writes a GraphQL-shaped error document so clients handle
// transport failures and execution failures the same way.
func errorResponse(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, code, message string) {
	env := jsonResponse{
		"errors": []jsonResponse{{
			"message":    message,
			"extensions": jsonResponse{"code": code},
		}},
	}
	err := writeJSON(w, status, env, nil)
	if err != nil {
		log.ErrorContext(r.Context(), "failed to write error response", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		sl.Err(err),
	)
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, log, http.StatusInternalServerError, codeInternal, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	errorResponse(w, r, log, http.StatusBadRequest, codeBadRequest, err.Error())
}
