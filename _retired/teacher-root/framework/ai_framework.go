// Copyright (C) 2024, Lux Industries Inc. All rights reserved.
// Composable AI Framework for Opt-In LLM Governance

package framework

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// AIFramework - Composable framework for opt-in AI governance
type AIFramework struct {
	mu sync.RWMutex
	
	// Framework Components
	registry      *ComponentRegistry
	orchestrator  *AIOrchestrator
	governance    *LLPGovernance // Large Language Processor governance
	
	// GPU Infrastructure
	gpuCluster    *GPUCluster
	computePool   *DistributedComputePool
	
	// Model Management
	modelRegistry *ModelRegistry
	fineTuner     *CollectiveFineTuner
	
	// Quantum Security
	quantumCore   *QuantumSecureConsensus
	quasarEngine  *ConsensusQuasar
	
	// Chain Evolution
	evolutionMgr  *EvolutionManager
	forkManager   *RecursiveForkManager
	
	// Node Opt-In Settings
	nodeConfig    *NodeOptInConfig
	capabilities  []Capability
}

// ComponentRegistry manages pluggable AI components
type ComponentRegistry struct {
	mu         sync.RWMutex
	components map[string]AIComponent
	
	// Component lifecycle
	lifecycle  map[string]ComponentLifecycle
	
	// Dependencies
	depGraph   *DependencyGraph
}

// AIComponent interface for all framework components
type AIComponent interface {
	// Lifecycle
	Initialize(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	
	// Configuration
	Configure(config interface{}) error
	GetCapabilities() []Capability
	
	// Integration
	Connect(other AIComponent) error
	HandleMessage(msg Message) error
}

// LLPGovernance - Large Language Processor governance system
type LLPGovernance struct {
	// Core LLP components
	processor     *LanguageProcessor
	reasoner      *GovernanceReasoner
	
	// Consensus integration
	consensusAPI  ConsensusInterface
	
	// Decision making
	decisions     []GovernanceDecision
	policies      map[string]*Policy
	
	// Community involvement
	proposals     map[string]*CommunityProposal
	votingSystem  *WeightedVoting
	
	// Gradual development
	maturityLevel int
	features      map[string]bool
}

// GPUCluster manages distributed GPU resources
type GPUCluster struct {
	nodes         map[string]*GPUNode
	scheduler     *GPUScheduler
	loadBalancer  *LoadBalancer
	
	// Resource allocation
	allocations   map[string]*ResourceAllocation
	
	// Performance metrics
	metrics       *ClusterMetrics
}

// ModelRegistry manages AI models across the network
type ModelRegistry struct {
	// Model storage
	models        map[string]*Model
	versions      map[string][]ModelVersion
	
	// Model types
	llms          map[string]*LLMSpec
	foundational  map[string]*FoundationalModel
	specialized   map[string]*SpecializedModel
	
	// Access control
	permissions   map[string]*ModelPermissions
}

// CollectiveFineTuner enables distributed fine-tuning
type CollectiveFineTuner struct {
	// Training coordination
	sessions      map[string]*TrainingSession
	
	// Data management
	dataShards    map[string]*DataShard
	federatedData *FederatedDataset
	
	// Gradient aggregation
	gradientAgg   *GradientAggregator
	
	// Privacy preservation
	differential  *DifferentialPrivacy
	secureMPC     *SecureMultipartyComputation
}

// QuantumSecureConsensus provides quantum-resistant consensus
type QuantumSecureConsensus struct {
	// Quantum-resistant algorithms
	latticeCore   *LatticeCrypto
	hashBased     *HashBasedSignatures
	
	// Post-quantum verification
	verifier      *QuantumVerifier
	
	// Integration with consensus
	consensusHook ConsensusHook
}

// ConsensusQuasar - The quantum-secure consensus engine
type ConsensusQuasar struct {
	// Core quasar components
	quantumCore   *QuantumCore
	entanglement  *EntanglementManager
	
	// Consensus mechanics
	validator     *QuasarValidator
	finalizer     *QuasarFinalizer
	
	// Security features
	qkd           *QuantumKeyDistribution
	randomBeacon  *QuantumRandomBeacon
}

// EvolutionManager handles recursive self-upgrades
type EvolutionManager struct {
	// Evolution tracking
	generations   []Generation
	currentGen    int
	
	// Upgrade mechanisms
	upgrader      *SelfUpgrader
	validator     *UpgradeValidator
	
	// Evolution strategies
	strategies    []EvolutionStrategy
	fitness       *FitnessEvaluator
}

// RecursiveForkManager manages infinite recursive chains
type RecursiveForkManager struct {
	// Fork tracking
	forks         map[string]*ChainFork
	forkTree      *ForkTree
	
	// Recursive logic
	recursionDepth int
	maxDepth       int
	
	// Fork strategies
	strategies     []ForkStrategy
	merger         *ForkMerger
}

// NodeOptInConfig - Configuration for node opt-in
type NodeOptInConfig struct {
	// Opt-in flags
	EnableAI           bool
	EnableGovernance   bool
	EnableGPU          bool
	EnableQuantum      bool
	
	// Capability selection
	SelectedModels     []string
	GovernanceLevel    string // "basic", "advanced", "full"
	
	// Resource commitment
	GPUAllocation      float64 // 0.0 to 1.0
	StorageAllocation  int64   // bytes
	
	// Privacy settings
	ShareData          bool
	ShareModels        bool
	ShareGradients     bool
}

// NewAIFramework creates the composable AI framework
func NewAIFramework(config *FrameworkConfig) *AIFramework {
	framework := &AIFramework{
		registry: &ComponentRegistry{
			components: make(map[string]AIComponent),
			lifecycle:  make(map[string]ComponentLifecycle),
			depGraph:   NewDependencyGraph(),
		},
		orchestrator: NewAIOrchestrator(),
		governance: &LLPGovernance{
			processor:     NewLanguageProcessor(),
			reasoner:      NewGovernanceReasoner(),
			policies:      make(map[string]*Policy),
			proposals:     make(map[string]*CommunityProposal),
			votingSystem:  NewWeightedVoting(),
			maturityLevel: 1,
			features:      make(map[string]bool),
		},
		gpuCluster: &GPUCluster{
			nodes:       make(map[string]*GPUNode),
			scheduler:   NewGPUScheduler(),
			loadBalancer: NewLoadBalancer(),
			allocations: make(map[string]*ResourceAllocation),
			metrics:     NewClusterMetrics(),
		},
		modelRegistry: &ModelRegistry{
			models:       make(map[string]*Model),
			versions:     make(map[string][]ModelVersion),
			llms:         make(map[string]*LLMSpec),
			foundational: make(map[string]*FoundationalModel),
			specialized:  make(map[string]*SpecializedModel),
			permissions:  make(map[string]*ModelPermissions),
		},
		fineTuner: &CollectiveFineTuner{
			sessions:      make(map[string]*TrainingSession),
			dataShards:    make(map[string]*DataShard),
			federatedData: NewFederatedDataset(),
			gradientAgg:   NewGradientAggregator(),
			differential:  NewDifferentialPrivacy(),
			secureMPC:     NewSecureMPC(),
		},
		quantumCore: &QuantumSecureConsensus{
			latticeCore:   NewLatticeCrypto(),
			hashBased:     NewHashBasedSignatures(),
			verifier:      NewQuantumVerifier(),
		},
		quasarEngine: &ConsensusQuasar{
			quantumCore:   NewQuantumCore(),
			entanglement:  NewEntanglementManager(),
			validator:     NewQuasarValidator(),
			finalizer:     NewQuasarFinalizer(),
			qkd:           NewQuantumKeyDistribution(),
			randomBeacon:  NewQuantumRandomBeacon(),
		},
		evolutionMgr: &EvolutionManager{
			generations: make([]Generation, 0),
			currentGen:  0,
			upgrader:    NewSelfUpgrader(),
			validator:   NewUpgradeValidator(),
			strategies:  make([]EvolutionStrategy, 0),
			fitness:     NewFitnessEvaluator(),
		},
		forkManager: &RecursiveForkManager{
			forks:          make(map[string]*ChainFork),
			forkTree:       NewForkTree(),
			recursionDepth: 0,
			maxDepth:       config.MaxRecursionDepth,
			strategies:     make([]ForkStrategy, 0),
			merger:         NewForkMerger(),
		},
		nodeConfig:   config.NodeConfig,
		capabilities: make([]Capability, 0),
	}
	
	// Register core components
	framework.registerCoreComponents()
	
	// Initialize quantum security
	framework.initializeQuantumSecurity()
	
	return framework
}

// OptIn allows a node to opt into AI features
func (f *AIFramework) OptIn(ctx context.Context, nodeID string, config *NodeOptInConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	
	// Validate opt-in request
	if err := f.validateOptIn(nodeID, config); err != nil {
		return fmt.Errorf("opt-in validation failed: %w", err)
	}
	
	// Enable requested components
	components := f.selectComponents(config)
	
	// Initialize components for node
	for _, comp := range components {
		if err := f.initializeComponent(ctx, nodeID, comp); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", comp.Name(), err)
		}
	}
	
	// Register node capabilities
	f.registerNodeCapabilities(nodeID, config)
	
	// Start governance if enabled
	if config.EnableGovernance {
		if err := f.startGovernance(ctx, nodeID, config.GovernanceLevel); err != nil {
			return err
		}
	}
	
	return nil
}

// DeployLLM deploys a new LLM to the network
func (f *AIFramework) DeployLLM(ctx context.Context, spec *LLMSpec) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	
	// Validate LLM specification
	if err := f.validateLLMSpec(spec); err != nil {
		return err
	}
	
	// Register model
	modelID := f.generateModelID()
	f.modelRegistry.llms[modelID] = spec
	
	// Allocate GPU resources
	allocation, err := f.gpuCluster.AllocateResources(spec.Requirements)
	if err != nil {
		return fmt.Errorf("GPU allocation failed: %w", err)
	}
	
	// Deploy to cluster
	if err := f.deployToCluster(ctx, modelID, spec, allocation); err != nil {
		return err
	}
	
	// Enable governance for model
	if err := f.governance.RegisterModel(modelID, spec); err != nil {
		return err
	}
	
	return nil
}

// StartCollectiveFineTuning initiates distributed fine-tuning
func (f *AIFramework) StartCollectiveFineTuning(ctx context.Context, config *FineTuningConfig) (*TrainingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	
	// Create training session
	session := &TrainingSession{
		ID:        f.generateSessionID(),
		ModelID:   config.ModelID,
		StartTime: time.Now(),
		Config:    config,
		Status:    "initializing",
	}
	
	// Gather participating nodes
	participants := f.gatherParticipants(config.MinParticipants)
	if len(participants) < config.MinParticipants {
		return nil, fmt.Errorf("insufficient participants: %d < %d", len(participants), config.MinParticipants)
	}
	
	// Shard data across participants
	shards, err := f.fineTuner.ShardData(config.Dataset, participants)
	if err != nil {
		return nil, err
	}
	
	// Initialize federated learning
	if err := f.fineTuner.InitializeFederated(session, shards); err != nil {
		return nil, err
	}
	
	// Start training with privacy preservation
	if config.EnablePrivacy {
		if err := f.fineTuner.EnableDifferentialPrivacy(session); err != nil {
			return nil, err
		}
	}
	
	// Register session
	f.fineTuner.sessions[session.ID] = session
	session.Status = "training"
	
	// Start async training
	go f.runTrainingSession(ctx, session)
	
	return session, nil
}

// ProcessGovernanceProposal handles LLP-based governance
func (f *AIFramework) ProcessGovernanceProposal(ctx context.Context, proposal *CommunityProposal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	
	// Use LLP to analyze proposal
	analysis, err := f.governance.processor.AnalyzeProposal(ctx, proposal)
	if err != nil {
		return fmt.Errorf("LLP analysis failed: %w", err)
	}
	
	// Apply reasoning engine
	decision, err := f.governance.reasoner.Reason(analysis)
	if err != nil {
		return err
	}
	
	// Check against policies
	for _, policy := range f.governance.policies {
		if !policy.Allows(decision) {
			return fmt.Errorf("decision violates policy %s", policy.Name)
		}
	}
	
	// Execute governance decision
	if err := f.executeGovernanceDecision(ctx, decision); err != nil {
		return err
	}
	
	// Record for transparency
	f.governance.decisions = append(f.governance.decisions, *decision)
	
	return nil
}

// EvolveFramework triggers recursive self-upgrade
func (f *AIFramework) EvolveFramework(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	
	// Evaluate current fitness
	fitness := f.evolutionMgr.fitness.Evaluate(f)
	
	// Generate evolution strategies
	strategies := f.evolutionMgr.GenerateStrategies(fitness)
	
	// Select best strategy
	strategy := f.evolutionMgr.SelectStrategy(strategies)
	
	// Create new generation
	newGen := Generation{
		Number:   f.evolutionMgr.currentGen + 1,
		Strategy: strategy,
		Fitness:  fitness,
		Time:     time.Now(),
	}
	
	// Apply upgrades
	upgrades := strategy.GenerateUpgrades(f)
	for _, upgrade := range upgrades {
		if err := f.evolutionMgr.upgrader.Apply(upgrade); err != nil {
			return fmt.Errorf("upgrade failed: %w", err)
		}
	}
	
	// Validate new generation
	if err := f.evolutionMgr.validator.Validate(newGen); err != nil {
		// Rollback on failure
		f.evolutionMgr.upgrader.Rollback()
		return err
	}
	
	// Update generation
	f.evolutionMgr.generations = append(f.evolutionMgr.generations, newGen)
	f.evolutionMgr.currentGen++
	
	return nil
}

// ForkChain creates a recursive self-upgrading fork
func (f *AIFramework) ForkChain(ctx context.Context, config *ForkConfig) (*ChainFork, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	
	// Check recursion depth
	if f.forkManager.recursionDepth >= f.forkManager.maxDepth {
		return nil, fmt.Errorf("max recursion depth reached: %d", f.forkManager.maxDepth)
	}
	
	// Create fork
	fork := &ChainFork{
		ID:             f.generateForkID(),
		ParentChain:    config.ParentChain,
		RecursionDepth: f.forkManager.recursionDepth + 1,
		Config:         config,
		CreatedAt:      time.Now(),
	}
	
	// Apply fork strategy
	strategy := f.forkManager.SelectStrategy(config)
	if err := strategy.Apply(fork); err != nil {
		return nil, err
	}
	
	// Initialize quantum security for fork
	if err := f.initializeQuantumForFork(fork); err != nil {
		return nil, err
	}
	
	// Register fork
	f.forkManager.forks[fork.ID] = fork
	f.forkManager.forkTree.AddFork(fork)
	
	// Enable recursive forking
	fork.EnableRecursion = true
	
	return fork, nil
}

// Helper methods

func (f *AIFramework) registerCoreComponents() {
	// Register AI components
	f.registry.Register("llp_governance", f.governance)
	f.registry.Register("gpu_cluster", f.gpuCluster)
	f.registry.Register("model_registry", f.modelRegistry)
	f.registry.Register("collective_finetuner", f.fineTuner)
	f.registry.Register("quantum_consensus", f.quantumCore)
	f.registry.Register("consensus_quasar", f.quasarEngine)
	f.registry.Register("evolution_manager", f.evolutionMgr)
	f.registry.Register("fork_manager", f.forkManager)
}

func (f *AIFramework) initializeQuantumSecurity() {
	// Initialize quantum-resistant algorithms
	f.quantumCore.latticeCore.Initialize()
	f.quantumCore.hashBased.Initialize()
	
	// Setup quantum key distribution
	f.quasarEngine.qkd.Setup()
	
	// Start quantum random beacon
	f.quasarEngine.randomBeacon.Start()
}

func (f *AIFramework) validateOptIn(nodeID string, config *NodeOptInConfig) error {
	// Validate node has sufficient resources
	if config.EnableGPU && config.GPUAllocation < 0.1 {
		return fmt.Errorf("insufficient GPU allocation: %.2f", config.GPUAllocation)
	}
	
	// Validate governance level
	validLevels := []string{"basic", "advanced", "full"}
	valid := false
	for _, level := range validLevels {
		if config.GovernanceLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid governance level: %s", config.GovernanceLevel)
	}
	
	return nil
}

func (f *AIFramework) selectComponents(config *NodeOptInConfig) []AIComponent {
	components := []AIComponent{}
	
	if config.EnableAI {
		components = append(components, f.modelRegistry)
	}
	
	if config.EnableGovernance {
		components = append(components, f.governance)
	}
	
	if config.EnableGPU {
		components = append(components, f.gpuCluster)
	}
	
	if config.EnableQuantum {
		components = append(components, f.quantumCore, f.quasarEngine)
	}
	
	return components
}

func (f *AIFramework) generateModelID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return "model_" + hex.EncodeToString(bytes)
}

func (f *AIFramework) generateSessionID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return "session_" + hex.EncodeToString(bytes)
}

func (f *AIFramework) generateForkID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return "fork_" + hex.EncodeToString(bytes)
}

// Stub implementations for supporting types
type FrameworkConfig struct {
	MaxRecursionDepth int
	NodeConfig        *NodeOptInConfig
	QuantumEnabled    bool
	GPUNodes          []string
}

type Capability string
type Message interface{}
type ConsensusInterface interface{}
type ConsensusHook interface{}
type ComponentLifecycle struct{}
type DependencyGraph struct{}
type Policy struct{ Name string }
type CommunityProposal struct{}
type GovernanceDecision struct{}
type Model struct{}
type ModelVersion struct{}
type LLMSpec struct{ Requirements ResourceRequirements }
type FoundationalModel struct{}
type SpecializedModel struct{}
type ModelPermissions struct{}
type TrainingSession struct {
	ID        string
	ModelID   string
	StartTime time.Time
	Config    *FineTuningConfig
	Status    string
}
type DataShard struct{}
type FederatedDataset struct{}
type GradientAggregator struct{}
type DifferentialPrivacy struct{}
type SecureMultipartyComputation struct{}
type LatticeCrypto struct{ func() Initialize() {} }
type HashBasedSignatures struct{ func() Initialize() {} }
type QuantumVerifier struct{}
type QuantumCore struct{}
type EntanglementManager struct{}
type QuasarValidator struct{}
type QuasarFinalizer struct{}
type QuantumKeyDistribution struct{ func() Setup() {} }
type QuantumRandomBeacon struct{ func() Start() {} }
type Generation struct {
	Number   int
	Strategy EvolutionStrategy
	Fitness  float64
	Time     time.Time
}
type EvolutionStrategy interface{ GenerateUpgrades(*AIFramework) []Upgrade }
type FitnessEvaluator struct{ func(f *AIFramework) Evaluate(f *AIFramework) float64 { return 0.8 } }
type SelfUpgrader struct{ 
	func() Apply(Upgrade) error { return nil }
	func() Rollback() {}
}
type UpgradeValidator struct{ func() Validate(Generation) error { return nil } }
type Upgrade interface{}
type ChainFork struct {
	ID             string
	ParentChain    string
	RecursionDepth int
	Config         *ForkConfig
	CreatedAt      time.Time
	EnableRecursion bool
}
type ForkTree struct{ func() AddFork(*ChainFork) {} }
type ForkStrategy interface{ Apply(*ChainFork) error }
type ForkMerger struct{}
type ForkConfig struct{ ParentChain string }
type FineTuningConfig struct {
	ModelID         string
	Dataset         string
	MinParticipants int
	EnablePrivacy   bool
}
type ResourceRequirements struct{}
type ResourceAllocation struct{}
type GPUNode struct{}
type GPUScheduler struct{}
type LoadBalancer struct{}
type ClusterMetrics struct{}
type AIOrchestrator struct{}
type LanguageProcessor struct{ func() AnalyzeProposal(context.Context, *CommunityProposal) (interface{}, error) { return nil, nil } }
type GovernanceReasoner struct{ func() Reason(interface{}) (*GovernanceDecision, error) { return &GovernanceDecision{}, nil } }
type WeightedVoting struct{}

// Constructor stubs
func NewDependencyGraph() *DependencyGraph { return &DependencyGraph{} }
func NewAIOrchestrator() *AIOrchestrator { return &AIOrchestrator{} }
func NewLanguageProcessor() *LanguageProcessor { return &LanguageProcessor{} }
func NewGovernanceReasoner() *GovernanceReasoner { return &GovernanceReasoner{} }
func NewWeightedVoting() *WeightedVoting { return &WeightedVoting{} }
func NewGPUScheduler() *GPUScheduler { return &GPUScheduler{} }
func NewLoadBalancer() *LoadBalancer { return &LoadBalancer{} }
func NewClusterMetrics() *ClusterMetrics { return &ClusterMetrics{} }
func NewFederatedDataset() *FederatedDataset { return &FederatedDataset{} }
func NewGradientAggregator() *GradientAggregator { return &GradientAggregator{} }
func NewDifferentialPrivacy() *DifferentialPrivacy { return &DifferentialPrivacy{} }
func NewSecureMPC() *SecureMultipartyComputation { return &SecureMultipartyComputation{} }
func NewLatticeCrypto() *LatticeCrypto { return &LatticeCrypto{} }
func NewHashBasedSignatures() *HashBasedSignatures { return &HashBasedSignatures{} }
func NewQuantumVerifier() *QuantumVerifier { return &QuantumVerifier{} }
func NewQuantumCore() *QuantumCore { return &QuantumCore{} }
func NewEntanglementManager() *EntanglementManager { return &EntanglementManager{} }
func NewQuasarValidator() *QuasarValidator { return &QuasarValidator{} }
func NewQuasarFinalizer() *QuasarFinalizer { return &QuasarFinalizer{} }
func NewQuantumKeyDistribution() *QuantumKeyDistribution { return &QuantumKeyDistribution{} }
func NewQuantumRandomBeacon() *QuantumRandomBeacon { return &QuantumRandomBeacon{} }
func NewSelfUpgrader() *SelfUpgrader { return &SelfUpgrader{} }
func NewUpgradeValidator() *UpgradeValidator { return &UpgradeValidator{} }
func NewFitnessEvaluator() *FitnessEvaluator { return &FitnessEvaluator{} }
func NewForkTree() *ForkTree { return &ForkTree{} }
func NewForkMerger() *ForkMerger { return &ForkMerger{} }

// Component registry methods
func (r *ComponentRegistry) Register(name string, component AIComponent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = component
}

// More stub methods...
func (f *AIFramework) initializeComponent(ctx context.Context, nodeID string, comp AIComponent) error { return nil }
func (f *AIFramework) registerNodeCapabilities(nodeID string, config *NodeOptInConfig) {}
func (f *AIFramework) startGovernance(ctx context.Context, nodeID string, level string) error { return nil }
func (f *AIFramework) validateLLMSpec(spec *LLMSpec) error { return nil }
func (f *AIFramework) deployToCluster(ctx context.Context, modelID string, spec *LLMSpec, allocation *ResourceAllocation) error { return nil }
func (f *AIFramework) gatherParticipants(min int) []string { return []string{"node1", "node2", "node3"} }
func (f *AIFramework) runTrainingSession(ctx context.Context, session *TrainingSession) {}
func (f *AIFramework) executeGovernanceDecision(ctx context.Context, decision *GovernanceDecision) error { return nil }
func (f *AIFramework) initializeQuantumForFork(fork *ChainFork) error { return nil }
func (g *GPUCluster) AllocateResources(req ResourceRequirements) (*ResourceAllocation, error) { return &ResourceAllocation{}, nil }
func (g *LLPGovernance) RegisterModel(modelID string, spec *LLMSpec) error { return nil }
func (e *EvolutionManager) GenerateStrategies(fitness float64) []EvolutionStrategy { return nil }
func (e *EvolutionManager) SelectStrategy(strategies []EvolutionStrategy) EvolutionStrategy { return nil }
func (f *RecursiveForkManager) SelectStrategy(config *ForkConfig) ForkStrategy { return nil }
func (f *CollectiveFineTuner) ShardData(dataset string, participants []string) ([]*DataShard, error) { return nil, nil }
func (f *CollectiveFineTuner) InitializeFederated(session *TrainingSession, shards []*DataShard) error { return nil }
func (f *CollectiveFineTuner) EnableDifferentialPrivacy(session *TrainingSession) error { return nil }
func (p *Policy) Allows(decision *GovernanceDecision) bool { return true }
func (c AIComponent) Name() string { return "component" }