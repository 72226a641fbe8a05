package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/kentays/jazz-lines/classify"
	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/library"
	"github.com/kentays/jazz-lines/line"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
	"github.com/kentays/jazz-lines/store"
	"github.com/kentays/jazz-lines/tagging"
)

var reg *library.Registry
var str *store.Store

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the line API",
	Long:  `Serves the line API`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := LoadServeState(constants.GetDBPath()); err != nil {
			panic("Could not load store: " + err.Error())
		}
		serve()
	},
}

// LoadServeState opens the store and loads the registry the handlers
// serve from. Split out so tests can point it at their own database.
func LoadServeState(dbPath string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	r, err := s.LoadRegistry()
	if err != nil {
		s.Close()
		return err
	}
	r.Ensure(constants.DefaultLibrary)
	str = s
	reg = r
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// resolveSequence maps line IDs back to registry lines, skipping IDs
// that no longer exist.
func resolveSequence(ids []string) model.Sequence {
	var seq model.Sequence
	for _, id := range ids {
		if l, ok := reg.Find(id); ok {
			seq = append(seq, l)
		}
	}
	return seq
}

func HandleClassify(w http.ResponseWriter, r *http.Request) {
	var input model.ClassifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}

	res := classify.Classify(input.EndDegree, reg.Candidates(), resolveSequence(input.SequenceIds), classify.Options{
		AllowDuplicates: input.AllowDuplicates,
		ConnectAnywhere: input.ConnectAnywhere,
		Enabled:         reg.Enabled,
	})

	var out model.ClassifyResponse
	for _, name := range res.Order {
		lines := res.Buckets[name]
		if lines == nil {
			lines = []model.Line{}
		}
		out.Buckets = append(out.Buckets, model.BucketGroup{Name: name, Lines: lines})
	}
	writeJSON(w, out)
}

func HandleCategorize(w http.ResponseWriter, r *http.Request) {
	var input model.CategorizeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}

	lines := reg.Candidates()
	if len(input.LineIds) > 0 {
		lines = resolveSequence(input.LineIds)
	}

	res := tagging.ByFunction(lines)
	var out model.CategorizeResponse
	for _, name := range res.Order {
		out.Groups = append(out.Groups, model.BucketGroup{Name: name, Lines: res.Groups[name]})
	}
	writeJSON(w, out)
}

func HandleCreateLine(w http.ResponseWriter, r *http.Request) {
	var input model.CreateLineRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}

	notes, err := note.ParseAll(input.Notes)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	tripletStart := -1
	if input.TripletStartIndex != nil {
		tripletStart = *input.TripletStartIndex
	}
	l, err := line.Build(notes, tripletStart)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	l.Tags = input.Tags
	l.LibraryID = input.Library
	l.Comment = input.Comment

	l = reg.Add(l)
	if err := str.SaveLine(l); err != nil {
		writeError(w, 500, "Could not save line: "+err.Error())
		return
	}
	writeJSON(w, l)
}

func HandleListLibraries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, reg.Overviews())
}

func HandleToggleLibrary(w http.ResponseWriter, r *http.Request) {
	var input model.ToggleLibraryRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}

	name := mux.Vars(r)["name"]
	if err := reg.SetEnabled(name, input.Enabled); err != nil {
		writeError(w, 404, err.Error())
		return
	}
	if err := str.SetLibraryEnabled(name, input.Enabled); err != nil {
		writeError(w, 500, "Could not save library state: "+err.Error())
		return
	}
	writeJSON(w, reg.Overviews())
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/classify", HandleClassify).Methods("POST")
	router.HandleFunc("/categorize", HandleCategorize).Methods("POST")
	router.HandleFunc("/lines", HandleCreateLine).Methods("POST")
	router.HandleFunc("/libraries", HandleListLibraries).Methods("GET")
	router.HandleFunc("/libraries/{name}", HandleToggleLibrary).Methods("PUT")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
