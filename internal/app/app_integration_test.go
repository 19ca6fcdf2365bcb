//go:build integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/parts-inventory/internal/config"
	"github.com/you-humble/parts-inventory/internal/model"
	repository "github.com/you-humble/parts-inventory/internal/repository/part"
	partsv1 "github.com/you-humble/parts-inventory/pkg/api/parts/v1"
	"github.com/you-humble/parts-inventory/platform/closer"
	"github.com/you-humble/parts-inventory/platform/logger"
	platformtc "github.com/you-humble/parts-inventory/platform/testcontainers"
	tcmongo "github.com/you-humble/parts-inventory/platform/testcontainers/mongo"
	tcnetwork "github.com/you-humble/parts-inventory/platform/testcontainers/network"
	"github.com/you-humble/parts-inventory/platform/testcontainers/path"
)

const (
	projectName     = "parts_e2e"
	mongoImage      = "mongo:8.2.3"
	mongoDB         = "parts-db"
	mongoCollection = "parts"
)

var (
	suiteCtx context.Context

	dockerNet *tcnetwork.Network
	mongoC    *tcmongo.Container

	deps      *di
	partsColl *mongo.Collection
	server    *httptest.Server
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parts Integration Suite")
}

var _ = BeforeSuite(func() {
	suiteCtx = context.Background()
	logger.SetNopLogger()

	By("creating isolated docker network")
	var err error
	dockerNet, err = tcnetwork.NewNetwork(suiteCtx, projectName)
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(suiteCtx,
		tcmongo.WithNetworkName(dockerNet.Name()),
		tcmongo.WithContainerName(projectName+"-"+platformtc.MongoContainerName),
		tcmongo.WithImageName(mongoImage),
		tcmongo.WithDatabase(mongoDB),
		tcmongo.WithAuth("parts_admin", "p@rts:123"),
		tcmongo.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())

	By("loading config pointing at the container")
	env := mongoC.Config().Env()
	env[platformtc.MongoCollectionKey] = mongoCollection
	env["HTTP_PORT"] = "0"
	env["STORAGE_DRIVER"] = config.StorageMongo
	env["DB_READ_TIMEOUT"] = "5s"
	env["DB_WRITE_TIMEOUT"] = "5s"
	env["KAFKA_ENABLED"] = "false"
	for k, v := range env {
		Expect(os.Setenv(k, v)).To(Succeed())
	}
	Expect(config.Load()).To(Succeed())

	By("wiring the service through the DI container")
	deps = NewDI()
	partsColl = deps.PartsCollection(suiteCtx)
	server = httptest.NewServer(deps.Router(suiteCtx))
})

var _ = AfterSuite(func() {
	if server != nil {
		server.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	Expect(closer.CloseAll(ctx)).To(Succeed())
	if mongoC != nil {
		_ = mongoC.Terminate(ctx)
	}
	if dockerNet != nil {
		_ = dockerNet.Remove(ctx)
	}
})

func call(method, url string, body any) (int, []byte) {
	var rdr io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(suiteCtx, method, server.URL+url, rdr)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	return resp.StatusCode, raw
}

func listParts() []partsv1.Part {
	code, raw := call(http.MethodGet, "/parts", nil)
	Expect(code).To(Equal(http.StatusOK))

	var parts []partsv1.Part
	Expect(json.Unmarshal(raw, &parts)).To(Succeed())
	return parts
}

func createPart(name string, number, inStock, onOrder int64) string {
	code, raw := call(http.MethodPost, "/parts", map[string]any{
		"partName":   name,
		"partNumber": number,
		"inStock":    inStock,
		"onOrder":    onOrder,
	})
	Expect(code).To(Equal(http.StatusOK), string(raw))

	var resp partsv1.CreatePartResponse
	Expect(json.Unmarshal(raw, &resp)).To(Succeed())
	Expect(resp.ID).To(MatchRegexp(`^[0-9a-f]{24}$`))
	return resp.ID
}

var _ = Describe("Parts HTTP API over MongoDB", func() {
	BeforeEach(func() {
		By("cleaning parts collection")
		_, err := partsColl.DeleteMany(suiteCtx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("answers the health check", func() {
		code, raw := call(http.MethodGet, "/health", nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(string(raw)).To(Equal("SERVING"))
	})

	It("lists an empty collection as []", func() {
		code, raw := call(http.MethodGet, "/parts", nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(string(bytes.TrimSpace(raw))).To(Equal("[]"))
	})

	It("runs the create, update, delete lifecycle", func() {
		id := createPart("Bolt", 1, 3, 0)

		By("finding the created part in the list")
		parts := listParts()
		Expect(parts).To(HaveLen(1))
		Expect(parts[0]).To(Equal(partsv1.Part{ID: id, PartName: "Bolt", PartNumber: 1, InStock: 3, OnOrder: 0}))

		By("updating a single field")
		code, raw := call(http.MethodPut, "/parts/"+id, map[string]any{"inStock": 7})
		Expect(code).To(Equal(http.StatusOK))
		Expect(raw).To(MatchJSON(`{"status":"success"}`))

		code, raw = call(http.MethodGet, "/parts/"+id, nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(raw).To(MatchJSON(`{"_id":"` + id + `","partName":"Bolt","partNumber":1,"inStock":7,"onOrder":0}`))

		By("deleting twice")
		code, raw = call(http.MethodDelete, "/parts/"+id, nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(raw).To(MatchJSON(`{"status":"deleted"}`))

		code, raw = call(http.MethodDelete, "/parts/"+id, nil)
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(raw).To(MatchJSON(`{"error":"Part not found"}`))

		Expect(listParts()).To(BeEmpty())
	})

	It("returns 404 for unknown and malformed ids without touching the collection", func() {
		createPart(gofakeit.ProductName(), 42, 1, 1)

		for _, id := range []string{bson.NewObjectID().Hex(), "not-an-id"} {
			code, raw := call(http.MethodPut, "/parts/"+id, map[string]any{"inStock": 1})
			Expect(code).To(Equal(http.StatusNotFound), id)
			Expect(raw).To(MatchJSON(`{"error":"Part not found"}`))

			code, _ = call(http.MethodDelete, "/parts/"+id, nil)
			Expect(code).To(Equal(http.StatusNotFound), id)
		}

		n, err := partsColl.CountDocuments(suiteCtx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(1))
	})

	It("stores documents with the wire field names", func() {
		id := createPart("Nail", 100002, 150, 0)
		oid, err := bson.ObjectIDFromHex(id)
		Expect(err).NotTo(HaveOccurred())

		var doc bson.M
		Expect(partsColl.FindOne(suiteCtx, bson.M{"_id": oid}).Decode(&doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("partName", "Nail"))
		Expect(doc).To(HaveKeyWithValue("partNumber", BeEquivalentTo(100002)))
		Expect(doc).To(HaveKeyWithValue("inStock", BeEquivalentTo(150)))
		Expect(doc).To(HaveKeyWithValue("onOrder", BeEquivalentTo(0)))
	})

	It("filters the list by part name", func() {
		createPart("Screw", 1, 1, 1)
		createPart("Nail", 2, 2, 2)
		createPart("Screw", 3, 3, 3)

		code, raw := call(http.MethodGet, "/parts?partName=Screw", nil)
		Expect(code).To(Equal(http.StatusOK))

		var parts []partsv1.Part
		Expect(json.Unmarshal(raw, &parts)).To(Succeed())
		Expect(parts).To(HaveLen(2))
		for _, p := range parts {
			Expect(p.PartName).To(Equal("Screw"))
		}
	})

	It("serves parts loaded from an extended JSON fixture", func() {
		loaded, err := repository.LoadFixtures(suiteCtx,
			deps.PartsRepository(suiteCtx),
			path.FromRoot("internal", "repository", "part", "testdata", "parts.json"),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(HaveLen(3))

		code, raw := call(http.MethodGet, "/parts/63d80df53cec861f655cdf13", nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(raw).To(MatchJSON(`{"_id":"63d80df53cec861f655cdf13","partName":"Screw","partNumber":100001,"inStock":20,"onOrder":10}`))

		Expect(listParts()).To(HaveLen(3))

		By("loading the same fixture again")
		_, err = repository.LoadFixtures(suiteCtx,
			deps.PartsRepository(suiteCtx),
			path.FromRoot("internal", "repository", "part", "testdata", "parts.json"),
		)
		Expect(err).To(MatchError(model.ErrPartAlreadyExists))

		code, raw = call(http.MethodGet, "/parts/63d80df53cec861f655cdf13", nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(raw).To(ContainSubstring(`"partName":"Screw"`))
	})
})
